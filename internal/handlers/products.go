package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strconv"
	"sync"

	applog "merchdesk/internal/log"
	"merchdesk/internal/preview"
	"merchdesk/internal/variants"
	"merchdesk/internal/views/components"
	"merchdesk/internal/views/pages"
)

const editorFormMemory = 8 << 20

var (
	previewMu      sync.RWMutex
	previewOptions preview.Options
)

// ConfigurePreview sets the limits applied to variant image previews.
func ConfigurePreview(opts preview.Options) {
	previewMu.Lock()
	defer previewMu.Unlock()
	previewOptions = opts
}

func currentPreviewOptions() preview.Options {
	previewMu.RLock()
	defer previewMu.RUnlock()
	return previewOptions
}

// ProductEditor renders the add-product page with a single blank option row.
func ProductEditor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	data := pages.ProductEditorData{
		Editor:   pages.NewProductEditor(),
		Theme:    loadCurrentUserTheme(r),
		UserName: currentUserName(r),
	}
	if isHTMX(r) {
		applog.Debug(r.Context(), "rendering product editor partial")
		renderHTML(w, r, pages.ProductEditorPartial(data))
		return
	}
	applog.Debug(r.Context(), "rendering product editor page")
	renderHTML(w, r, pages.ProductEditor(data))
}

// AddOption appends an empty option row and re-renders the editor.
func AddOption(w http.ResponseWriter, r *http.Request) {
	editor, ok := editorFromRequest(w, r)
	if !ok {
		return
	}
	row := editor.AddOption()
	regenerated := editor.Regenerate()
	applog.Debug(r.Context(), "option row added", "row", row.ID, "regenerated", regenerated)
	renderHTML(w, r, components.VariantEditor(editor))
}

// RemoveOption drops the option row named by the row query parameter and re-renders
// the editor.
func RemoveOption(w http.ResponseWriter, r *http.Request) {
	editor, ok := editorFromRequest(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(r.URL.Query().Get("row"))
	if err != nil {
		applog.Debug(r.Context(), "remove option with invalid row", "row", r.URL.Query().Get("row"))
		http.Error(w, "invalid option row", http.StatusBadRequest)
		return
	}
	removed := editor.RemoveOption(id)
	regenerated := false
	if removed {
		regenerated = editor.Regenerate()
	}
	applog.Debug(r.Context(), "option row removed", "row", id, "removed", removed, "regenerated", regenerated)
	renderHTML(w, r, components.VariantEditor(editor))
}

// Regenerate rebuilds the variant list from the posted option rows. Incomplete or
// mismatched options leave the rendered list untouched and answer 204.
func Regenerate(w http.ResponseWriter, r *http.Request) {
	editor, ok := editorFromRequest(w, r)
	if !ok {
		return
	}
	if !editor.Regenerate() {
		applog.Debug(r.Context(), "variant regeneration skipped", "rows", len(editor.Rows()))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	matrix := editor.Matrix()
	applog.Debug(r.Context(), "variants regenerated", "options", len(matrix.Names), "variants", matrix.Len())
	renderHTML(w, r, components.VariantList(matrix))
}

// PreviewImage renders a thumbnail of the image chosen for one variant group. Missing
// files and unreadable images answer 204 so the preview element keeps its content.
func PreviewImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	index, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil || index < 0 {
		applog.Debug(r.Context(), "preview with invalid index", "index", r.URL.Query().Get("index"))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	opts := currentPreviewOptions()
	limit := opts.MaxBytes
	if limit <= 0 {
		limit = preview.DefaultMaxBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit+editorFormMemory)
	if err := r.ParseMultipartForm(editorFormMemory); err != nil {
		applog.Debug(r.Context(), "preview upload unreadable", "error", err)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	file, header, err := r.FormFile(variants.VariantField(index, variants.FieldImage))
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			applog.Debug(r.Context(), "preview file unavailable", "error", err)
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}
	defer file.Close()

	dataURL, err := preview.Thumbnail(file, opts)
	if err != nil {
		applog.Debug(r.Context(), "preview generation failed", "index", index, "file", header.Filename, "error", err)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	applog.Debug(r.Context(), "preview generated", "index", index, "file", header.Filename, "size", header.Size)
	renderHTML(w, r, components.ImagePreview(index, dataURL))
}

// editorFromRequest rebuilds the editor from the posted form. It writes the error
// response itself and reports false when the request cannot be served.
func editorFromRequest(w http.ResponseWriter, r *http.Request) (*variants.Editor, bool) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil, false
	}
	if err := parseEditorForm(r); err != nil {
		applog.Debug(r.Context(), "failed to parse editor form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return nil, false
	}
	rows, seq, records := variants.DecodeForm(r.PostForm)
	return variants.Restore(rows, seq, records), true
}

func parseEditorForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(editorFormMemory)
	}
	return r.ParseForm()
}

package pages

import "merchdesk/internal/variants"

// ProductEditorData is everything the product editor page needs to render.
type ProductEditorData struct {
	Editor   *variants.Editor
	Theme    string
	UserName string
}

// NewProductEditor returns the initial editor state: one blank option row.
func NewProductEditor() *variants.Editor {
	editor := variants.NewEditor()
	editor.AddOption()
	editor.Regenerate()
	return editor
}

func (d ProductEditorData) editor() *variants.Editor {
	if d.Editor == nil {
		return NewProductEditor()
	}
	return d.Editor
}

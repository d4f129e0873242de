package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"merchdesk/internal/variants"
)

func TestVariantGroupRendersFieldsAndEscapedOptions(t *testing.T) {
	record := variants.Record{
		Label:       "Red / S",
		Options:     variants.Selection{{Name: "Color", Value: "Red"}, {Name: "Size", Value: "S"}},
		SKU:         "ABC",
		Description: "<b>bold</b>",
	}
	var buf bytes.Buffer
	if err := VariantGroup(2, record).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render variant group: %v", err)
	}
	out := buf.String()
	for _, token := range []string{
		`<h6 class="fw-bold mb-3 text-danger">Red / S</h6>`,
		`name="variants[2][options]" value="{&#34;Color&#34;:&#34;Red&#34;,&#34;Size&#34;:&#34;S&#34;}"`,
		`name="variants[2][sku]" placeholder="Enter SKU" value="ABC"`,
		`name="variants[2][regular_price]" required`,
		`&lt;b&gt;bold&lt;/b&gt;</textarea>`,
		`id="variant-img-preview-2"`,
		`hx-post="/app/products/variants/preview?index=2"`,
	} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected output to contain %q: %s", token, out)
		}
	}
	if strings.Contains(out, "old_image") {
		t.Fatalf("expected no old image reference without a prior image: %s", out)
	}
}

func TestVariantGroupRendersPriorImage(t *testing.T) {
	var buf bytes.Buffer
	record := variants.Record{Label: "Blue", ImageURL: "/media/blue.png"}
	if err := VariantGroup(0, record).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render variant group: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `name="variants[0][old_image]" value="/media/blue.png"`) {
		t.Fatalf("expected old image hidden field: %s", out)
	}
	if !strings.Contains(out, `<img src="/media/blue.png"`) {
		t.Fatalf("expected prior image preview: %s", out)
	}
}

func TestVariantListRendersGroupsInOrder(t *testing.T) {
	matrix := variants.Build([]string{"Color", "Size"}, [][]string{{"Red", "Blue"}, {"S", "M"}}, nil)
	var buf bytes.Buffer
	if err := VariantList(matrix).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render variant list: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `data-variant-count="4"`) {
		t.Fatalf("expected variant count attribute: %s", out)
	}
	last := -1
	for _, label := range []string{"Red / S", "Red / M", "Blue / S", "Blue / M"} {
		idx := strings.Index(out, `data-variant-label="`+label+`"`)
		if idx <= last {
			t.Fatalf("expected %q after previous group (index %d, previous %d)", label, idx, last)
		}
		last = idx
	}
}

func TestImagePreviewSkipsEmptySource(t *testing.T) {
	var buf bytes.Buffer
	if err := ImagePreview(4, "").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render preview: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected empty output, got %q", buf.String())
	}
}

func TestImagePreviewCarriesSourceAsOldImage(t *testing.T) {
	const src = "data:image/png;base64,iVBORw0KGgo="
	var buf bytes.Buffer
	if err := ImagePreview(3, src).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render preview: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `<img src="`+src+`"`) {
		t.Fatalf("expected preview image: %s", out)
	}
	if !strings.Contains(out, `<input type="hidden" name="variants[3][old_image]" value="`+src+`">`) {
		t.Fatalf("expected old image field inside the preview: %s", out)
	}
}

func TestVariantGroupKeepsOldImageInsidePreview(t *testing.T) {
	var buf bytes.Buffer
	record := variants.Record{Label: "Blue", ImageURL: "/media/blue.png"}
	if err := VariantGroup(1, record).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render variant group: %v", err)
	}
	out := buf.String()
	start := strings.Index(out, `id="variant-img-preview-1">`)
	if start < 0 {
		t.Fatalf("expected preview element: %s", out)
	}
	preview := out[start:]
	preview = preview[:strings.Index(preview, "</div>")]
	if !strings.Contains(preview, `name="variants[1][old_image]"`) {
		t.Fatalf("expected old image field within the preview element: %s", preview)
	}
}

func TestVariantEditorRendersRowsAndSequence(t *testing.T) {
	editor := variants.NewEditor()
	row := editor.AddOption()
	editor.SetOption(row.ID, "Color", `Red,"Blue"`)
	editor.Regenerate()

	var buf bytes.Buffer
	if err := VariantEditor(editor).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render editor: %v", err)
	}
	out := buf.String()
	for _, token := range []string{
		`id="variantEditor"`,
		`name="option_seq" value="1"`,
		`Option 1 Name`,
		`name="options[1][values]" value="Red,&#34;Blue&#34;"`,
		`hx-post="/app/products/variants/options/remove?row=1"`,
		`id="variantList"`,
		`data-variant-count="2"`,
	} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected output to contain %q: %s", token, out)
		}
	}
}

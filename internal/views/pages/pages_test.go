package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"merchdesk/internal/variants"
	"merchdesk/models"
)

func TestNewProductEditorStartsWithBlankRow(t *testing.T) {
	editor := NewProductEditor()
	if rows := editor.Rows(); len(rows) != 1 || rows[0].ID != 1 {
		t.Fatalf("expected one blank option row, got %+v", rows)
	}
	if editor.Matrix().Len() != 0 {
		t.Fatalf("expected no variants for a blank row, got %d", editor.Matrix().Len())
	}
}

func TestProductEditorRendersInsideLayout(t *testing.T) {
	editor := variants.NewEditor()
	row := editor.AddOption()
	editor.SetOption(row.ID, "Color", "Red,Blue")
	editor.Regenerate()

	var buf bytes.Buffer
	data := ProductEditorData{Editor: editor, Theme: models.ThemeSlate, UserName: "Store Admin"}
	if err := ProductEditor(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render product editor: %v", err)
	}
	out := buf.String()
	for _, token := range []string{"<title>Add Product</title>", `id="productForm"`, `data-variant-count="2"`, "Store Admin", `data-theme="slate"`} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected output to contain %q: %s", token, out)
		}
	}
}

func TestProductEditorPartialHasNoDocumentShell(t *testing.T) {
	var buf bytes.Buffer
	if err := ProductEditorPartial(ProductEditorData{}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render partial: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<html") {
		t.Fatalf("expected partial without document shell: %s", out)
	}
	if !strings.Contains(out, `name="options[1][name]"`) {
		t.Fatalf("expected a blank option row: %s", out)
	}
}

func TestLoginPartialEscapesInput(t *testing.T) {
	var buf bytes.Buffer
	if err := LoginPartial("Bad <credentials>", `a"b@example.com`).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render login: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Bad &lt;credentials&gt;") {
		t.Fatalf("expected escaped message: %s", out)
	}
	if !strings.Contains(out, `value="a&#34;b@example.com"`) {
		t.Fatalf("expected escaped email: %s", out)
	}
}

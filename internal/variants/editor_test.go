package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newColorSizeEditor(t *testing.T) *Editor {
	t.Helper()
	e := NewEditor()
	color := e.AddOption()
	size := e.AddOption()
	require.True(t, e.SetOption(color.ID, "Color", "Red,Blue"))
	require.True(t, e.SetOption(size.ID, "Size", "S,M"))
	require.True(t, e.Regenerate())
	return e
}

func TestEditorRegenerateRendersRowMajorMatrix(t *testing.T) {
	e := newColorSizeEditor(t)
	assert.Equal(t, []string{"Red / S", "Red / M", "Blue / S", "Blue / M"}, e.Matrix().Labels())
	assert.Equal(t, []string{"Color", "Size"}, e.Matrix().Names)
}

func TestEditorRegenerateIsIdempotent(t *testing.T) {
	e := newColorSizeEditor(t)
	e.matrix.Records[0].SKU = "ABC"
	first := e.Matrix()

	require.True(t, e.Regenerate())
	assert.Equal(t, first, e.Matrix())
}

func TestEditorPreservesDataAcrossUnrelatedChanges(t *testing.T) {
	e := newColorSizeEditor(t)
	e.matrix.Records[0].SKU = "ABC"

	rows := e.Rows()
	require.True(t, e.SetOption(rows[1].ID, "Size", "S,M,L"))
	require.True(t, e.Regenerate())

	assert.Equal(t, 6, e.Matrix().Len())
	for _, record := range e.Matrix().Records {
		if record.Label == "Red / S" {
			assert.Equal(t, "ABC", record.SKU)
		} else {
			assert.Empty(t, record.SKU)
		}
	}
}

func TestEditorMismatchedRowsLeaveMatrixUntouched(t *testing.T) {
	e := newColorSizeEditor(t)
	before := e.Matrix()

	row := e.AddOption()
	require.True(t, e.SetOption(row.ID, "Material", ""))
	assert.False(t, e.Regenerate())
	assert.Equal(t, before, e.Matrix())
}

func TestEditorWithoutOptionsDoesNotRegenerate(t *testing.T) {
	e := NewEditor()
	assert.False(t, e.Regenerate())
	assert.Equal(t, 0, e.Matrix().Len())

	e.AddOption()
	assert.False(t, e.Regenerate())
	assert.Equal(t, 0, e.Matrix().Len())
}

func TestEditorRemoveOptionDropsDimension(t *testing.T) {
	e := newColorSizeEditor(t)
	rows := e.Rows()

	assert.True(t, e.RemoveOption(rows[1].ID))
	assert.False(t, e.RemoveOption(rows[1].ID))
	require.True(t, e.Regenerate())
	assert.Equal(t, []string{"Red", "Blue"}, e.Matrix().Labels())
}

func TestEditorRemovingLastOptionKeepsPriorMatrix(t *testing.T) {
	e := NewEditor()
	row := e.AddOption()
	require.True(t, e.SetOption(row.ID, "Color", "Red"))
	require.True(t, e.Regenerate())

	require.True(t, e.RemoveOption(row.ID))
	assert.False(t, e.Regenerate())
	assert.Equal(t, []string{"Red"}, e.Matrix().Labels())
}

func TestEditorRowIdentifiersKeepIncreasing(t *testing.T) {
	e := NewEditor()
	first := e.AddOption()
	second := e.AddOption()
	require.True(t, e.RemoveOption(second.ID))
	third := e.AddOption()

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 3, third.ID)
	assert.Equal(t, 3, e.Seq())
	assert.False(t, e.SetOption(second.ID, "x", "y"))
}

func TestRestoreOrdersRowsAndRaisesSequence(t *testing.T) {
	e := Restore([]OptionRow{{ID: 4, Name: "Size"}, {ID: 2, Name: "Color"}}, 1, []Record{{Label: "Red"}})
	rows := e.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Color", rows[0].Name)
	assert.Equal(t, 4, e.Seq())
	assert.Equal(t, []string{"Red"}, e.Matrix().Labels())
	assert.Equal(t, 5, e.AddOption().ID)
}

func TestRestoreThenRegenerateReconcilesPostedRecords(t *testing.T) {
	rendered := []Record{
		{Label: "Red / S", SKU: "ABC", ImageURL: "/media/a.png"},
		{Label: "Red / M", SKU: "DEF"},
	}
	e := Restore([]OptionRow{
		{ID: 1, Name: "Color", Values: "Red"},
		{ID: 2, Name: "Size", Values: "S,M"},
		{ID: 3, Name: "Fit", Values: "Slim"},
	}, 3, rendered)

	require.True(t, e.Regenerate())
	for _, record := range e.Matrix().Records {
		assert.Empty(t, record.SKU, "label %q gained a dimension and must start empty", record.Label)
	}

	e = Restore([]OptionRow{
		{ID: 1, Name: "Color", Values: "Red,Green"},
		{ID: 2, Name: "Size", Values: "S,M"},
	}, 2, rendered)
	require.True(t, e.Regenerate())
	records := e.Matrix().Records
	require.Len(t, records, 4)
	assert.Equal(t, "ABC", records[0].SKU)
	assert.Equal(t, "/media/a.png", records[0].ImageURL)
	assert.Equal(t, "DEF", records[1].SKU)
}

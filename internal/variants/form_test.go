package variants

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "variants[3][regular_price]", VariantField(3, FieldRegularPrice))
	assert.Equal(t, "options[2][values]", RowField(2, RowFieldValues))
}

func TestDecodeForm(t *testing.T) {
	form := url.Values{}
	form.Set(SeqField, "7")
	form.Set("options[5][name]", "Size")
	form.Set("options[5][values]", "S,M")
	form.Set("options[2][name]", "Color")
	form.Set("options[2][values]", "Red")
	form.Set("variants[1][label]", "Red / M")
	form.Set("variants[1][sku]", "RM")
	form.Set("variants[0][options]", `{"Color":"Red","Size":"S"}`)
	form.Set("variants[0][sku]", "RS")
	form.Set("variants[0][stock]", "3")
	form.Set("variants[0][old_image]", "/media/rs.png")
	form.Set("variants[0][description]", "line one\nline two")
	form.Set("csrf", "ignored")
	form.Set("variants[x][sku]", "ignored")

	rows, seq, records := DecodeForm(form)

	assert.Equal(t, 7, seq)
	assert.Equal(t, []OptionRow{
		{ID: 2, Name: "Color", Values: "Red"},
		{ID: 5, Name: "Size", Values: "S,M"},
	}, rows)

	require.Len(t, records, 2)
	assert.Equal(t, "Red / S", records[0].Label, "label falls back to the option values")
	assert.Equal(t, "RS", records[0].SKU)
	assert.Equal(t, "3", records[0].Stock)
	assert.Equal(t, "/media/rs.png", records[0].ImageURL)
	assert.Equal(t, "line one\nline two", records[0].Description)
	assert.Equal(t, "Red / M", records[1].Label)
	assert.Equal(t, "RM", records[1].SKU)
}

func TestDecodeFormIgnoresMalformedOptionsJSON(t *testing.T) {
	form := url.Values{}
	form.Set("variants[0][options]", "{not json")
	form.Set("variants[0][label]", "Red")

	_, seq, records := DecodeForm(form)
	assert.Equal(t, 0, seq)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Options)
	assert.Equal(t, "Red", records[0].Label)
}

func TestEncodeFormRoundTripsThroughDecode(t *testing.T) {
	rows := []OptionRow{{ID: 1, Name: "Color", Values: "Red, Blue"}}
	records := []Record{
		{Label: "Red", Options: Selection{{Name: "Color", Value: "Red"}}, SKU: "R", RegularPrice: "9.99"},
		{Label: "Blue", Options: Selection{{Name: "Color", Value: "Blue"}}, ImageURL: "/media/b.png"},
	}

	gotRows, seq, gotRecords := DecodeForm(EncodeForm(rows, 1, records))
	assert.Equal(t, rows, gotRows)
	assert.Equal(t, 1, seq)
	assert.Equal(t, records, gotRecords)
}

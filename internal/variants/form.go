package variants

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Variant group field names, used as variants[<index>][<field>].
const (
	FieldOptions      = "options"
	FieldLabel        = "label"
	FieldSKU          = "sku"
	FieldStock        = "stock"
	FieldRegularPrice = "regular_price"
	FieldSalePrice    = "sale_price"
	FieldPoints       = "points"
	FieldDescription  = "description"
	FieldImage        = "image"
	FieldOldImage     = "old_image"
)

// Option row field names, used as options[<id>][<field>].
const (
	RowFieldName   = "name"
	RowFieldValues = "values"
)

// SeqField carries the editor's row counter between requests.
const SeqField = "option_seq"

var (
	variantKeyPattern = regexp.MustCompile(`^variants\[(\d+)\]\[([a-z_]+)\]$`)
	optionKeyPattern  = regexp.MustCompile(`^options\[(\d+)\]\[([a-z_]+)\]$`)
)

// VariantField returns the form name of a variant group field.
func VariantField(index int, field string) string {
	return fmt.Sprintf("variants[%d][%s]", index, field)
}

// RowField returns the form name of an option row field.
func RowField(id int, field string) string {
	return fmt.Sprintf("options[%d][%s]", id, field)
}

// DecodeForm reads the option rows, row counter and rendered variant records from a
// posted editor form. Unknown keys are ignored and records come back in index order.
func DecodeForm(form url.Values) (rows []OptionRow, seq int, records []Record) {
	rowsByID := map[int]*OptionRow{}
	recordsByIndex := map[int]*Record{}

	for key, vals := range form {
		if len(vals) == 0 {
			continue
		}
		value := vals[len(vals)-1]

		if m := optionKeyPattern.FindStringSubmatch(key); m != nil {
			id, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			row, ok := rowsByID[id]
			if !ok {
				row = &OptionRow{ID: id}
				rowsByID[id] = row
			}
			switch m[2] {
			case RowFieldName:
				row.Name = value
			case RowFieldValues:
				row.Values = value
			}
			continue
		}

		if m := variantKeyPattern.FindStringSubmatch(key); m != nil {
			index, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			record, ok := recordsByIndex[index]
			if !ok {
				record = &Record{}
				recordsByIndex[index] = record
			}
			assignField(record, m[2], value)
		}
	}

	if raw := strings.TrimSpace(form.Get(SeqField)); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			seq = parsed
		}
	}

	ids := make([]int, 0, len(rowsByID))
	for id := range rowsByID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		rows = append(rows, *rowsByID[id])
	}

	indexes := make([]int, 0, len(recordsByIndex))
	for index := range recordsByIndex {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)
	for _, index := range indexes {
		record := *recordsByIndex[index]
		if record.Label == "" && len(record.Options) > 0 {
			record.Label = record.Options.Values().Label()
		}
		records = append(records, record)
	}

	return rows, seq, records
}

func assignField(record *Record, field, value string) {
	switch field {
	case FieldOptions:
		var selection Selection
		if err := json.Unmarshal([]byte(value), &selection); err == nil {
			record.Options = selection
		}
	case FieldLabel:
		record.Label = strings.TrimSpace(value)
	case FieldSKU:
		record.SKU = value
	case FieldStock:
		record.Stock = value
	case FieldRegularPrice:
		record.RegularPrice = value
	case FieldSalePrice:
		record.SalePrice = value
	case FieldPoints:
		record.Points = value
	case FieldDescription:
		record.Description = value
	case FieldOldImage:
		record.ImageURL = value
	}
}

// EncodeForm writes the editor state back into form values, the inverse of DecodeForm.
func EncodeForm(rows []OptionRow, seq int, records []Record) url.Values {
	form := url.Values{}
	form.Set(SeqField, strconv.Itoa(seq))
	for _, row := range rows {
		form.Set(RowField(row.ID, RowFieldName), row.Name)
		form.Set(RowField(row.ID, RowFieldValues), row.Values)
	}
	for i, record := range records {
		form.Set(VariantField(i, FieldOptions), record.OptionsJSON())
		form.Set(VariantField(i, FieldLabel), record.Label)
		setIfPresent(form, VariantField(i, FieldSKU), record.SKU)
		setIfPresent(form, VariantField(i, FieldStock), record.Stock)
		setIfPresent(form, VariantField(i, FieldRegularPrice), record.RegularPrice)
		setIfPresent(form, VariantField(i, FieldSalePrice), record.SalePrice)
		setIfPresent(form, VariantField(i, FieldPoints), record.Points)
		setIfPresent(form, VariantField(i, FieldDescription), record.Description)
		setIfPresent(form, VariantField(i, FieldOldImage), record.ImageURL)
	}
	return form
}

func setIfPresent(form url.Values, key, value string) {
	if value != "" {
		form.Set(key, value)
	}
}

package variants

// Snapshot indexes rendered records by label. When two records share a label the
// later one wins, mirroring a form read top to bottom.
func Snapshot(records []Record) map[string]Record {
	snapshot := make(map[string]Record, len(records))
	for _, record := range records {
		snapshot[record.Label] = record
	}
	return snapshot
}

// Reconcile builds one record per label, reusing the field values of the prior record
// with exactly the same label and leaving every field empty otherwise.
func Reconcile(prior map[string]Record, labels []string) []Record {
	records := make([]Record, 0, len(labels))
	for _, label := range labels {
		record := Record{Label: label}
		if previous, ok := prior[label]; ok {
			record = record.carry(previous)
		}
		records = append(records, record)
	}
	return records
}

// Matrix is the rendered set of variant records for the current options.
type Matrix struct {
	Names   []string
	Records []Record
}

// Len reports the number of variant groups.
func (m Matrix) Len() int {
	return len(m.Records)
}

// Labels returns the record labels in render order.
func (m Matrix) Labels() []string {
	labels := make([]string, 0, len(m.Records))
	for _, record := range m.Records {
		labels = append(labels, record.Label)
	}
	return labels
}

// Build expands the options into a matrix, carrying over prior field values by label.
func Build(names []string, values [][]string, prior map[string]Record) Matrix {
	combos := Cartesian(values)
	labels := make([]string, 0, len(combos))
	for _, combo := range combos {
		labels = append(labels, combo.Label())
	}

	records := Reconcile(prior, labels)
	for i := range records {
		records[i].Options = NewSelection(names, combos[i])
	}

	return Matrix{
		Names:   append([]string(nil), names...),
		Records: records,
	}
}

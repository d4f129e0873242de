package variants

import (
	"sort"
)

// Editor tracks the option rows of one product form and the matrix rendered from them.
// It is rebuilt from the posted form on every request, so it never outlives the form.
type Editor struct {
	rows   []OptionRow
	nextID int
	matrix Matrix
}

// NewEditor returns an editor with no option rows and an empty matrix.
func NewEditor() *Editor {
	return &Editor{}
}

// Restore rebuilds an editor from the state carried by a posted form. seq is the last
// row identifier handed out; it is raised when a row carries a larger identifier.
func Restore(rows []OptionRow, seq int, rendered []Record) *Editor {
	e := &Editor{
		rows:   append([]OptionRow(nil), rows...),
		nextID: seq,
		matrix: Matrix{Records: append([]Record(nil), rendered...)},
	}
	sort.SliceStable(e.rows, func(i, j int) bool {
		return e.rows[i].ID < e.rows[j].ID
	})
	for _, row := range e.rows {
		if row.ID > e.nextID {
			e.nextID = row.ID
		}
	}
	return e
}

// Rows returns a copy of the option rows in display order.
func (e *Editor) Rows() []OptionRow {
	return append([]OptionRow(nil), e.rows...)
}

// Seq returns the last row identifier handed out.
func (e *Editor) Seq() int {
	return e.nextID
}

// Matrix returns the currently rendered matrix.
func (e *Editor) Matrix() Matrix {
	return e.matrix
}

// AddOption appends an empty option row and returns it.
func (e *Editor) AddOption() OptionRow {
	e.nextID++
	row := OptionRow{ID: e.nextID}
	e.rows = append(e.rows, row)
	return row
}

// RemoveOption drops the row with the given identifier.
func (e *Editor) RemoveOption(id int) bool {
	for i, row := range e.rows {
		if row.ID == id {
			e.rows = append(e.rows[:i], e.rows[i+1:]...)
			return true
		}
	}
	return false
}

// SetOption replaces the name and raw values of the row with the given identifier.
func (e *Editor) SetOption(id int, name, values string) bool {
	for i := range e.rows {
		if e.rows[i].ID == id {
			e.rows[i].Name = name
			e.rows[i].Values = values
			return true
		}
	}
	return false
}

// Regenerate recomputes the matrix from the current rows, preserving field values of
// records whose label survives. It reports false and leaves the matrix untouched when
// the rows do not describe a complete set of options.
func (e *Editor) Regenerate() bool {
	names, values, ok := ParseOptions(e.rows)
	if !ok {
		return false
	}
	e.matrix = Build(names, values, Snapshot(e.matrix.Records))
	return true
}

package variants

import "strings"

// LabelSeparator joins the values of a combination into its display label.
const LabelSeparator = " / "

// Combination is one value picked from each option, in option order.
type Combination []string

// Label returns the display label used as the reconciliation key.
func (c Combination) Label() string {
	return strings.Join(c, LabelSeparator)
}

// Cartesian expands the value lists into every combination in row-major order: the
// first list varies slowest and the last varies fastest. Zero lists yield the single
// empty combination; any empty list yields no combinations.
func Cartesian(values [][]string) []Combination {
	combos := []Combination{{}}
	for _, list := range values {
		next := make([]Combination, 0, len(combos)*len(list))
		for _, prefix := range combos {
			for _, value := range list {
				combo := make(Combination, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, value))
			}
		}
		combos = next
	}
	return combos
}

// Count returns the number of combinations Cartesian would produce.
func Count(values [][]string) int {
	total := 1
	for _, list := range values {
		total *= len(list)
	}
	return total
}

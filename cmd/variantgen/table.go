package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"merchdesk/internal/variants"
)

var tableColumns = []string{"#", "LABEL", "SKU", "STOCK", "REGULAR", "SALE", "IMAGE"}

func tableRow(index int, record variants.Record) []string {
	image := ""
	if record.ImageURL != "" {
		image = "yes"
	}
	return []string{
		strconv.Itoa(index + 1),
		record.Label,
		record.SKU,
		record.Stock,
		record.RegularPrice,
		record.SalePrice,
		image,
	}
}

// renderTable writes the matrix as aligned columns followed by a summary line.
// Styling degrades to plain text when w is not a terminal.
func renderTable(w io.Writer, matrix variants.Matrix, options []variants.Option) error {
	renderer := lipgloss.NewRenderer(w)
	headerStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).PaddingRight(2)
	cellStyle := renderer.NewStyle().PaddingRight(2)
	footerStyle := renderer.NewStyle().Faint(true)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers(tableColumns...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i, record := range matrix.Records {
		t.Row(tableRow(i, record)...)
	}

	names := make([]string, 0, len(options))
	for _, option := range options {
		names = append(names, option.Name)
	}
	footer := footerStyle.Render(fmt.Sprintf("%d variants from %d options (%s)",
		matrix.Len(), len(options), strings.Join(names, ", ")))

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(), footer)
	return err
}

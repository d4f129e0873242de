package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"merchdesk/internal/variants"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var errIncompleteOptions = errors.New("every option needs a name and at least one value")

type rootOptions struct {
	options  []string
	previous string
	format   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "variantgen",
		Short: "Expand product options into the full variant matrix",
		Long: "variantgen builds one variant per combination of option values, first option varying slowest.\n" +
			"Records from a previous run are carried over to combinations with the same label.",
		Example:       `  variantgen --option "Color=Red,Blue" --option "Size=S,M,L" --previous variants.yaml --format yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.options, "option", "o", nil, `Option as "Name=value1,value2" (repeatable, in product order)`)
	cmd.Flags().StringVarP(&opts.previous, "previous", "p", "", "YAML or JSON file with previously generated variant records")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "Output format: table, json or yaml")
	_ = cmd.MarkFlagRequired("option")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	format := strings.ToLower(strings.TrimSpace(opts.format))
	switch format {
	case formatTable, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unsupported format %q (want table, json or yaml)", opts.format)
	}

	rows, err := parseOptionFlags(opts.options)
	if err != nil {
		return err
	}
	names, values, ok := variants.ParseOptions(rows)
	if !ok {
		return errIncompleteOptions
	}

	prior := map[string]variants.Record{}
	if opts.previous != "" {
		records, err := loadRecords(opts.previous)
		if err != nil {
			return err
		}
		prior = variants.Snapshot(records)
	}

	matrix := variants.Build(names, values, prior)
	out := cmd.OutOrStdout()

	switch format {
	case formatJSON:
		return writeJSON(out, matrix.Records)
	case formatYAML:
		return writeYAML(out, matrix.Records)
	default:
		return renderTable(out, matrix, variants.Options(names, values))
	}
}

// parseOptionFlags turns "Name=v1,v2" flag values into option rows numbered from one.
func parseOptionFlags(raw []string) ([]variants.OptionRow, error) {
	rows := make([]variants.OptionRow, 0, len(raw))
	for i, value := range raw {
		name, list, found := strings.Cut(value, "=")
		if !found {
			return nil, fmt.Errorf("option %q: expected Name=value1,value2", value)
		}
		rows = append(rows, variants.OptionRow{ID: i + 1, Name: name, Values: list})
	}
	return rows, nil
}

// loadRecords reads a record list. JSON input is accepted because it parses as YAML.
func loadRecords(path string) ([]variants.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read previous records: %w", err)
	}
	var records []variants.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse previous records %s: %w", path, err)
	}
	return records, nil
}

func writeJSON(w io.Writer, records []variants.Record) error {
	if records == nil {
		records = []variants.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeYAML(w io.Writer, records []variants.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

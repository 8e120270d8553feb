package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type table struct {
	w *tabwriter.Writer
}

func (t *table) row(cols ...string) {
	fmt.Fprintln(t.w, strings.Join(cols, "\t"))
}

func render(out io.Writer, format string, v interface{}, tableFn func(*table)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		t := &table{w: tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)}
		tableFn(t)
		return t.w.Flush()
	}
	return fmt.Errorf("unknown output format %q", format)
}

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/kent-id/xmladiscover"
	"github.com/kent-id/xmladiscover/types"
	"github.com/pkg/errors"
)

func writeKinds(out io.Writer, registry *xmladiscover.Registry) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Request Type\tConnection\tDescription")
	fmt.Fprintln(w, "------------\t----------\t-----------")
	for _, kind := range registry.Kinds() {
		connection := "no"
		if kind.NeedsConnection() {
			connection = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", kind.Name(), connection, kind.Description())
	}
	return w.Flush()
}

// writeTable prints the flattened rowset one row per line.
func writeTable(out io.Writer, m *xmladiscover.MetadataRowset) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, strings.Join(m.Headers, "\t"))
	underline := make([]string, len(m.Headers))
	for i, h := range m.Headers {
		underline[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(underline, "\t"))

	cells := make([]string, len(m.Headers))
	for _, row := range m.Rows {
		for i, v := range row {
			cells[i] = types.FormatScalar(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

// writeArrow streams the flattened rowset in the Arrow IPC stream format.
func writeArrow(out io.Writer, m *xmladiscover.MetadataRowset) error {
	mem := memory.NewGoAllocator()
	table := m.ArrowTable(mem)
	defer table.Release()

	writer := ipc.NewWriter(out, ipc.WithSchema(table.Schema()), ipc.WithAllocator(mem))
	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	for tr.Next() {
		if err := writer.Write(tr.Record()); err != nil {
			writer.Close()
			return errors.Wrap(err, "writing arrow record")
		}
	}
	if tr.Err() != nil {
		writer.Close()
		return errors.Wrap(tr.Err(), "reading arrow table")
	}
	return errors.Wrap(writer.Close(), "closing arrow stream")
}

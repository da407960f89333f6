package commands

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/kre8/kre8/pkg/backend"
	"github.com/kre8/kre8/pkg/validation"
	"github.com/rodaine/table"
	"io"
	"sort"
)

var (
	headerFmt = color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt = color.New(color.FgYellow).SprintfFunc()
	red       = color.New(color.FgRed)
)

func newTable(out io.Writer, columns ...interface{}) table.Table {
	tbl := table.New(columns...)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(out)

	return tbl
}

func printResponse(out io.Writer, response *backend.Response) {
	tbl := newTable(out, "KEY", "MESSAGE", "MANIFEST")
	tbl.AddRow(response.Key, response.Message, response.Manifest)
	tbl.Print()
}

func printFieldErrors(out io.Writer, fieldErrors validation.FieldErrors) {
	for _, field := range fieldErrors.Fields() {
		red.Fprintf(out, "%s: %s\n", field, fieldErrors[field])
	}
}

// printValues prints a key/value mapping sorted by key.
func printValues(out io.Writer, values map[string]string) {
	keys := make([]string, 0, len(values))

	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	tbl := newTable(out, "KEY", "VALUE")

	for _, key := range keys {
		tbl.AddRow(key, values[key])
	}

	tbl.Print()
}

func masked(value string) string {
	if len(value) <= 4 {
		return "****"
	}

	return fmt.Sprintf("%s****", value[:4])
}

// Package diff renders readable differences for test failures.
package diff

import (
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/kylelemons/godebug/diff"
)

// DiffExportedOnly pretty prints both values and diffs the output. It returns
// the empty string when they print the same.
func DiffExportedOnly[T any](want T, got T) string {
	printer := pp.New()
	printer.SetExportedOnly(true)
	printer.SetColoringEnabled(false)
	return render(printer.Sprint(got), printer.Sprint(want))
}

// Lines diffs two line oriented dumps, like the token text format.
func Lines(want, got string) string {
	return render(strings.TrimRight(got, "\n"), strings.TrimRight(want, "\n"))
}

func render(got, want string) string {
	if got == want {
		return ""
	}
	d := diff.Diff(got, want)
	str := "\n\n"
	str += "to convert ACTUAL ⏩️ EXPECTED:\n\n"
	str += "add:    ➕\n"
	str += "remove: ➖\n"
	str += "\n"
	str += strings.ReplaceAll(strings.ReplaceAll("\n"+d, "\n-", "\n➖"), "\n+", "\n➕")
	return str
}

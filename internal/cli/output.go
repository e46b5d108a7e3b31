package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ccw-labs/skillhub/internal/registry"
	"github.com/fatih/color"
)

var (
	okColor     = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
	headerColor = color.New(color.Bold)
)

func printOK(w io.Writer, format string, a ...any) {
	okColor.Fprint(w, "[ OK ] ")
	fmt.Fprintf(w, format+"\n", a...)
}

func printFail(w io.Writer, format string, a ...any) {
	failColor.Fprint(w, "[FAIL] ")
	fmt.Fprintf(w, format+"\n", a...)
}

func printWarn(w io.Writer, format string, a ...any) {
	warnColor.Fprint(w, "[WARN] ")
	fmt.Fprintf(w, format+"\n", a...)
}

func printHeader(w io.Writer, title string) {
	headerColor.Fprintf(w, "=== %s ===\n", title)
}

// printChanges lists added ids in green and removed ids in red. Nothing is
// printed when the id sets are equal.
func printChanges(w io.Writer, c registry.Changes) {
	if len(c.Added) > 0 {
		fmt.Fprint(w, "Added:   ")
		okColor.Fprintln(w, strings.Join(c.Added, ", "))
	}
	if len(c.Removed) > 0 {
		fmt.Fprint(w, "Removed: ")
		failColor.Fprintln(w, strings.Join(c.Removed, ", "))
	}
}

package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrettyOpts controls diagnostic printing.
type PrettyOpts struct {
	Color bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

// Pretty writes the bag's diagnostics one per line, sorted.
func Pretty(w io.Writer, bag *Bag, opts PrettyOpts) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	for _, d := range bag.Items() {
		if !opts.Color {
			fmt.Fprintln(w, d.String())
			continue
		}
		var c *color.Color
		switch d.Severity {
		case SevError:
			c = errColor
		case SevWarning:
			c = warnColor
		default:
			c = infoColor
		}
		head := c.Sprintf("%s %s", d.Severity, d.Code)
		switch {
		case d.File == "":
			fmt.Fprintf(w, "%s: %s\n", head, d.Message)
		case d.Line == 0:
			fmt.Fprintf(w, "%s: %s: %s\n", head, d.File, d.Message)
		default:
			fmt.Fprintf(w, "%s: %s:%d: %s\n", head, d.File, d.Line, d.Message)
		}
	}
}

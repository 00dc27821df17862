package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"hdrguard/internal/guard"
)

// TableOpts controls table rendering.
type TableOpts struct {
	Color bool
	// Reasons appends the per-flag explanation column.
	Reasons bool
}

var (
	emitColor     = color.New(color.FgGreen, color.Bold)
	suppressColor = color.New(color.FgRed, color.Bold)
	forcedColor   = color.New(color.FgMagenta, color.Bold)
)

// WriteTable prints one row per flag: macro, value, owning sentinel, and
// optionally the reason. Columns are aligned by display width.
func WriteTable(w io.Writer, decisions []guard.Decision, opts TableOpts) error {
	macroW := runewidth.StringWidth("macro")
	sentinelW := runewidth.StringWidth("sentinel")
	for _, d := range decisions {
		if n := runewidth.StringWidth(d.Flag.Macro()); n > macroW {
			macroW = n
		}
		if n := runewidth.StringWidth(d.Probe.Sentinel()); n > sentinelW {
			sentinelW = n
		}
	}

	if _, err := fmt.Fprintf(w, "%s  %s  %s\n",
		pad("macro", macroW), "value", pad("sentinel", sentinelW)); err != nil {
		return err
	}

	for _, d := range decisions {
		value := fmt.Sprintf("%d", d.Value)
		if opts.Color {
			switch {
			case d.Forced:
				value = forcedColor.Sprint(value)
			case d.Value == guard.Suppress:
				value = suppressColor.Sprint(value)
			default:
				value = emitColor.Sprint(value)
			}
		}
		line := fmt.Sprintf("%s  %s%s  %s",
			pad(d.Flag.Macro(), macroW), value, strings.Repeat(" ", len("value")-1), pad(d.Probe.Sentinel(), sentinelW))
		if opts.Reasons {
			line += "  " + d.Reason()
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

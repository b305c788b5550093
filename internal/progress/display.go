package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Display prints one line per step. On a TTY a spinner runs while the step
// is in progress.
type Display struct {
	out     io.Writer
	caps    TerminalCapabilities
	symbols ProgressSymbols
	spin    *spinner.Spinner
}

// NewDisplay creates a display writing to out.
func NewDisplay(out io.Writer, caps TerminalCapabilities) *Display {
	return &Display{
		out:     out,
		caps:    caps,
		symbols: SelectSymbols(caps),
	}
}

// Start begins a step.
func (d *Display) Start(label string) {
	if !d.caps.IsTTY {
		return
	}
	d.spin = spinner.New(spinner.CharSets[d.symbols.SpinnerSet], 100*time.Millisecond, spinner.WithWriter(d.out))
	d.spin.Suffix = " " + label
	d.spin.Start()
}

// Success ends the current step successfully.
func (d *Display) Success(label string) {
	d.stop()
	fmt.Fprintf(d.out, "%s %s\n", d.paint(color.FgGreen, d.symbols.Checkmark), label)
}

// Fail ends the current step with err.
func (d *Display) Fail(label string, err error) {
	d.stop()
	fmt.Fprintf(d.out, "%s %s: %v\n", d.paint(color.FgRed, d.symbols.Failure), label, err)
}

// Skip records a step that did not run.
func (d *Display) Skip(label, reason string) {
	d.stop()
	fmt.Fprintf(d.out, "%s %s (%s)\n", d.paint(color.FgYellow, d.symbols.Skipped), label, reason)
}

func (d *Display) stop() {
	if d.spin != nil {
		d.spin.Stop()
		d.spin = nil
	}
}

func (d *Display) paint(attr color.Attribute, s string) string {
	if !d.caps.SupportsColor {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/snail/snailfish"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Tracer prints a number before reduction and after every step, marking
// the part of the literal each step changed.
type Tracer struct {
	w     io.Writer
	prev  string
	steps int
	mark  func(string) string
	label func(string) string
}

// NewTracer returns a tracer writing to w. Colour is used only when w is a
// terminal.
func NewTracer(w io.Writer) *Tracer {
	tr := &Tracer{w: w}
	tr.SetColor(isTerminal(w))
	return tr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColor turns highlighting on or off.
func (tr *Tracer) SetColor(on bool) {
	if !on {
		tr.mark = nil
		tr.label = func(s string) string { return s }
		return
	}
	changed := color.New(color.FgYellow, color.Bold)
	changed.EnableColor()
	label := color.RGB(128, 168, 196)
	label.EnableColor()
	tr.mark = func(s string) string { return changed.Sprint(s) }
	tr.label = func(s string) string { return label.Sprint(s) }
}

// Start records the unreduced number.
func (tr *Tracer) Start(t *snailfish.Tree) error {
	tr.prev = t.String()
	tr.steps = 0
	_, err := fmt.Fprintf(tr.w, "%4s %s %s\n", "", tr.label(fmt.Sprintf("%-7s", "start")), tr.prev)
	return err
}

// Observe prints one step. It has the signature snailfish.WithObserver
// expects; write errors are dropped.
func (tr *Tracer) Observe(s snailfish.Step, t *snailfish.Tree) {
	tr.steps++
	next := t.String()
	line := next
	if tr.mark != nil {
		line = Highlight(tr.prev, next, tr.mark)
	}
	fmt.Fprintf(tr.w, "%4d %s %s\n", tr.steps, tr.label(fmt.Sprintf("%-7s", s.Kind)), line)
	tr.prev = next
}

// Steps returns the number of steps observed since Start.
func (tr *Tracer) Steps() int {
	return tr.steps
}

// Highlight returns next with every run of text not present in prev
// wrapped by mark. Deleted text is dropped.
func Highlight(prev, next string, mark func(string) string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(prev, next, false)
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffpatch.DiffInsert:
			sb.WriteString(mark(d.Text))
		case diffpatch.DiffDelete:
		}
	}
	return sb.String()
}

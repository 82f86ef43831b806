package lsp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/snail/snailfish"
	"github.com/dhamidi/snail/snailfish/lex"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "snail"

// line is one line of an open document.
type line struct {
	text string
	tree *snailfish.Tree // nil for blank or malformed lines
	err  *snailfish.SyntaxError
}

type document struct {
	uri   string
	lines []line
}

func newDocument(uri, text string) *document {
	doc := &document{uri: uri}
	for i, raw := range strings.Split(text, "\n") {
		text, indent := snailfish.TrimLine(raw)
		l := line{text: text}
		if l.text != "" {
			tree, err := snailfish.Parse(l.text, lex.WithStartLine(i+1), lex.WithStartColumn(indent+1))
			var syntaxErr *snailfish.SyntaxError
			switch {
			case err == nil:
				l.tree = tree
			case errors.As(err, &syntaxErr):
				l.err = syntaxErr
			default:
				l.err = &snailfish.SyntaxError{
					Pos: lex.Position{Line: i + 1, Column: 1},
					Msg: err.Error(),
				}
			}
		}
		doc.lines = append(doc.lines, l)
	}
	return doc
}

// numbers returns the well-formed numbers of the document in order.
func (d *document) numbers() []*snailfish.Tree {
	var trees []*snailfish.Tree
	for _, l := range d.lines {
		if l.tree != nil {
			trees = append(trees, l.tree)
		}
	}
	return trees
}

// diagnostics reports one error per malformed line. The slice is never nil
// so publishing it clears stale diagnostics.
func (d *document) diagnostics() []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	for i, l := range d.lines {
		if l.err == nil {
			continue
		}
		col := protocol.UInteger(l.err.Pos.Column - 1)
		diags = append(diags, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(i), Character: col},
				End:   protocol.Position{Line: protocol.UInteger(i), Character: col + 1},
			},
			Severity: &severity,
			Source:   &source,
			Message:  l.err.Msg,
		})
	}
	return diags
}

// hover describes the number on line n, or returns "" when there is none.
// Numbers too malformed to reduce are reported instead of crashing the
// server, and are left out of the file-wide search.
func (d *document) hover(n int) string {
	if n < 0 || n >= len(d.lines) || d.lines[n].tree == nil {
		return ""
	}
	text, err := describe(d.lines[n].tree)
	if err != nil {
		log.Warningf("hover on %s:%d: %v", d.uri, n+1, err)
		return err.Error()
	}
	if best, ok := d.largestSum(); ok {
		text += fmt.Sprintf("\n\nlargest pairwise sum in file: %d", best)
	}
	return text
}

// describe renders the magnitude and reduced form of t.
func describe(t *snailfish.Tree) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot reduce: %v", r)
		}
	}()
	reduced := t.Clone()
	steps := reduced.Reduce()

	var sb strings.Builder
	fmt.Fprintf(&sb, "**magnitude** %d\n\n", t.Magnitude())
	if steps == 0 {
		sb.WriteString("already reduced")
	} else {
		fmt.Fprintf(&sb, "reduces in %d steps to `%s` (magnitude %d)", steps, reduced, reduced.Magnitude())
	}
	return sb.String(), nil
}

// largestSum is the largest pairwise magnitude over the numbers of the
// document that reduce on their own.
func (d *document) largestSum() (best int, ok bool) {
	var trees []*snailfish.Tree
	for _, t := range d.numbers() {
		if _, err := describe(t); err == nil {
			trees = append(trees, t)
		}
	}
	if len(trees) < 2 {
		return 0, false
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warningf("%s: largest pairwise sum: %v", d.uri, r)
			best, ok = 0, false
		}
	}()
	result, err := snailfish.MaxMagnitude(trees)
	if err != nil {
		return 0, false
	}
	return result.Magnitude, true
}

package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/snail/snailfish"
)

// LineEncoder writes a number as its literal followed by its magnitude.
type LineEncoder struct {
	w    io.Writer
	tree *snailfish.Tree
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(t *snailfish.Tree) error {
	e.tree = t
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	if e.tree == nil {
		return nil, fmt.Errorf("line encoder: no tree")
	}
	return fmt.Appendf(nil, "%s\nmagnitude: %d\n", e.tree, e.tree.Magnitude()), nil
}

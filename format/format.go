// Package format encodes snailfish numbers for output.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/snail/snailfish"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(t *snailfish.Tree) error
}

// NewEncoder returns the encoder registered under name: "text" or "json".
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

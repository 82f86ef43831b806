package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/snail/snailfish"
)

// JSONEncoder writes a number as a JSON object. A snailfish literal is
// already valid JSON, so the number itself is emitted as nested arrays.
type JSONEncoder struct {
	w    io.Writer
	tree *snailfish.Tree
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(t *snailfish.Tree) error {
	e.tree = t
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	if e.tree == nil {
		return nil, fmt.Errorf("json encoder: no tree")
	}
	// Compact, so the number keeps its literal shape.
	return json.Marshal(e.buildData())
}

type jsonNumber struct {
	Number    json.RawMessage `json:"number"`
	Magnitude int             `json:"magnitude"`
	Reduced   bool            `json:"reduced"`
	Depth     int             `json:"depth"`
	Leaves    int             `json:"leaves"`
}

func (e *JSONEncoder) buildData() jsonNumber {
	t := e.tree
	if t.Root() == snailfish.None {
		return jsonNumber{Number: json.RawMessage("null")}
	}
	data := jsonNumber{
		Number:    json.RawMessage(t.String()),
		Magnitude: t.Magnitude(),
		Reduced:   t.IsReduced(),
	}
	for leaf := range t.Leaves() {
		data.Leaves++
		data.Depth = max(data.Depth, t.Depth(leaf))
	}
	return data
}

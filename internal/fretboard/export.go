package fretboard

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Export is the machine-readable form of a rendered diagram.
type Export struct {
	Modulus int        `json:"modulus" msgpack:"modulus"`
	Tuning  []int      `json:"tuning" msgpack:"tuning"`
	Chord   []int      `json:"chord" msgpack:"chord"`
	Root    int        `json:"root" msgpack:"root"`
	Header  string     `json:"header,omitempty" msgpack:"header,omitempty"`
	Frets   []int      `json:"frets" msgpack:"frets"`
	Rows    [][]string `json:"rows" msgpack:"rows"`
}

// Export validates the inputs and returns the grid with cell names
// ("open", "stopped", "root"). Roots are always reported as "root";
// DisplayRoots only affects text output.
func (r *Renderer) Export(chord Chord, tuning Tuning) (Export, error) {
	p, err := r.prepare(chord, tuning)
	if err != nil {
		return Export{}, err
	}
	root, _ := p.chord.Root()
	e := Export{
		Modulus: r.opts.Modulus,
		Tuning:  classInts(p.tuning),
		Chord:   classInts(p.chord),
		Root:    int(root),
		Frets:   append([]int(nil), p.grid.Frets...),
		Rows:    make([][]string, len(p.grid.Cells)),
	}
	if r.opts.PrintHeader {
		e.Header = r.header(p.chord, p.tuning)
	}
	for i, row := range p.grid.Cells {
		names := make([]string, len(row))
		for j, c := range row {
			names[j] = c.String()
		}
		e.Rows[i] = names
	}
	return e, nil
}

func classInts[T ~[]E, E ~int](in T) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

// EncodeJSON writes exports as an indented JSON array.
func EncodeJSON(w io.Writer, exports []Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exports)
}

// EncodeMsgpack writes exports as a msgpack array.
func EncodeMsgpack(w io.Writer, exports []Export) error {
	return msgpack.NewEncoder(w).Encode(exports)
}

// DecodeMsgpack reads what EncodeMsgpack wrote.
func DecodeMsgpack(r io.Reader) ([]Export, error) {
	var out []Export
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

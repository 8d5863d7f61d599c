package fretboard

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"fretboard/internal/pitch"
)

// Tuning lists the open pitch class of each string, lowest-indexed first.
type Tuning []pitch.Class

// Chord lists the pitch classes of a chord or scale. The first one is the
// root.
type Chord []pitch.Class

// Root returns the first pitch class.
func (c Chord) Root() (pitch.Class, bool) {
	if len(c) == 0 {
		return 0, false
	}
	return c[0], true
}

var (
	ErrMissingRoot    = errors.New("chord has no root")
	ErrInvalidModulus = errors.New("modulus must be positive")
	ErrNegativeFret   = errors.New("fret numbers must not be negative")
)

// Cell is the state of one string at one fret.
type Cell uint8

const (
	CellOpen Cell = iota
	CellStopped
	CellRoot
)

func (c Cell) String() string {
	switch c {
	case CellStopped:
		return "stopped"
	case CellRoot:
		return "root"
	default:
		return "open"
	}
}

// Grid is the membership grid: one row per fret, one column per string.
type Grid struct {
	Frets []int
	Cells [][]Cell
}

func (g Grid) Rows() int { return len(g.Cells) }

func (g Grid) Strings() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Compute classifies every string/fret position. For fret f and open string
// s the sounding class is (s+f) mod modulus; it is CellRoot when equal to the
// root, CellStopped when it is any other chord member, CellOpen otherwise.
// Chord and tuning classes are wrapped by modulus before comparison, and
// duplicate chord members are harmless.
func Compute(chord Chord, tuning Tuning, frets []int, modulus int) (Grid, error) {
	if modulus <= 0 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidModulus, modulus)
	}
	root, ok := chord.Root()
	if !ok {
		return Grid{}, ErrMissingRoot
	}
	root = pitch.Normalize(root, modulus)
	members := make(map[pitch.Class]struct{}, len(chord))
	for _, pc := range chord {
		members[pitch.Normalize(pc, modulus)] = struct{}{}
	}

	g := Grid{
		Frets: make([]int, 0, len(frets)),
		Cells: make([][]Cell, 0, len(frets)),
	}
	for _, f := range frets {
		fret, err := safecast.Conv[uint](f)
		if err != nil {
			return Grid{}, fmt.Errorf("%w: %d", ErrNegativeFret, f)
		}
		row := make([]Cell, len(tuning))
		for i, s := range tuning {
			p := pitch.Normalize(s+pitch.Class(fret), modulus)
			switch _, member := members[p]; {
			case p == root:
				row[i] = CellRoot
			case member:
				row[i] = CellStopped
			default:
				row[i] = CellOpen
			}
		}
		g.Frets = append(g.Frets, f)
		g.Cells = append(g.Cells, row)
	}
	return g, nil
}

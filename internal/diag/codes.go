package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// pitch naming and normalisation
	PitchInfo                  Code = 1000
	PitchOutOfRange            Code = 1001
	PitchConflictingPreference Code = 1002
	PitchWrapped               Code = 1003
	PitchDuplicate             Code = 1004

	// glyph set
	GlyphInfo          Code = 2000
	GlyphWidthMismatch Code = 2001

	// rendering preconditions
	RenderInfo           Code = 3000
	RenderMissingRoot    Code = 3001
	RenderInvalidModulus Code = 3002
	RenderNegativeFret   Code = 3003

	// file output
	IOWriteFailed Code = 4001

	// configuration
	ConfigInvalid Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                "Unknown error",
	PitchInfo:                  "Pitch information",
	PitchOutOfRange:            "Pitch class out of range",
	PitchConflictingPreference: "Both sharps and flats requested",
	PitchWrapped:               "Pitch class wrapped by modulus",
	PitchDuplicate:             "Duplicate pitch class",
	GlyphInfo:                  "Glyph information",
	GlyphWidthMismatch:         "Glyph widths differ",
	RenderInfo:                 "Render information",
	RenderMissingRoot:          "Chord has no root",
	RenderInvalidModulus:       "Invalid modulus",
	RenderNegativeFret:         "Negative fret number",
	IOWriteFailed:              "Failed to write output",
	ConfigInvalid:              "Invalid configuration",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("PCH%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("GLY%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RND%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

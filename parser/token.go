package parser

// Token is one element of a tokenized sheet. It is implemented only by Literal and Note.
type Token interface {
	isToken()
}

// Accidental is the semitone modifier carried by a note.
type Accidental int

const (
	Flat    Accidental = -1
	Natural Accidental = 0
	Sharp   Accidental = 1
)

// Glyph returns the notation for the accidental ("#", "b", or "").
func (a Accidental) Glyph() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	default:
		return ""
	}
}

// Literal is text that is not part of a note and is emitted verbatim.
type Literal struct {
	Text string

	// Pos is the rune offset of the literal in the normalized input.
	Pos int
}

// Note is a scale degree with an optional accidental and the octave offset implied by
// the brackets enclosing it.
type Note struct {
	Degree     int // 1..7
	Accidental Accidental
	Octave     int // negative for (), positive for []

	Pos int
}

func (Literal) isToken() {}
func (Note) isToken()    {}

package parser

import "strings"

// Render serializes tokens back to notation. Each note is wrapped in as many bracket
// pairs as its octave offset requires; literals are written unchanged.
func Render(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch t := tok.(type) {
		case Literal:
			b.WriteString(t.Text)
		case Note:
			writeNote(&b, t)
		}
	}
	return b.String()
}

func writeNote(b *strings.Builder, n Note) {
	pre, post := "", ""
	depth := n.Octave
	switch {
	case depth < 0:
		pre, post, depth = "(", ")", -depth
	case depth > 0:
		pre, post = "[", "]"
	}

	b.WriteString(strings.Repeat(pre, depth))
	b.WriteString(n.Accidental.Glyph())
	b.WriteByte(byte('0' + n.Degree))
	b.WriteString(strings.Repeat(post, depth))
}

package parser

import "unicode/utf8"

// acceptable lists the non-note characters that are expected in a sheet.
var acceptable = map[rune]bool{
	' ': true, '\t': true, '\n': true, '\r': true,
	'0': true, '8': true, '9': true,
	'=': true, '-': true, '|': true, '/': true, '\\': true,
	':': true, ';': true, ',': true, '.': true,
	'!': true, '?': true, '_': true,
}

// Unrecognized is a literal character outside the acceptable set.
type Unrecognized struct {
	Char rune
	Pos  int
}

// Acceptable reports whether r may appear in a sheet without being flagged.
func Acceptable(r rune) bool { return acceptable[r] }

// Classify returns every literal character that is not in the acceptable set, in token
// order. Unmatched brackets and lone accidentals are literals and are reported too.
func Classify(tokens []Token) []Unrecognized {
	var out []Unrecognized
	for _, tok := range tokens {
		lit, ok := tok.(Literal)
		if !ok {
			continue
		}
		pos := lit.Pos
		for i := 0; i < len(lit.Text); {
			r, size := utf8.DecodeRuneInString(lit.Text[i:])
			if !acceptable[r] {
				out = append(out, Unrecognized{Char: r, Pos: pos})
			}
			i += size
			pos++
		}
	}
	return out
}

// Package jianpu transposes numbered musical notation between keys.
package jianpu

import (
	"github.com/harmonica-tools/jianpu/internal/pitch"
	"github.com/harmonica-tools/jianpu/parser"
)

// DefaultSourceKey is the key sheets are assumed to be written in.
const DefaultSourceKey = "C"

// Warning flags a character that was kept as-is but isn't expected in a sheet.
type Warning struct {
	Char rune
	Pos  int // rune offset in the bracket-normalized input
}

type options struct {
	reportUnrecognized bool
}

type Option func(*options)

// WithUnrecognized reports literal characters outside the accepted punctuation set.
// Without it the returned warnings are always empty.
func WithUnrecognized() Option {
	return func(o *options) { o.reportUnrecognized = true }
}

// TransposeSheet rewrites every note in text from sourceKey into targetKey. Unknown key
// names are treated as C. Characters that aren't notes are preserved verbatim.
func TransposeSheet(text, targetKey, sourceKey string, opts ...Option) (string, []Warning) {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}

	tokens := parser.Tokenize(text)
	out := parser.Render(pitch.Transpose(tokens, pitch.KeyOffset(sourceKey), pitch.KeyOffset(targetKey)))
	sheetsTransposed.Inc()

	warnings := []Warning{}
	if o.reportUnrecognized {
		for _, u := range parser.Classify(tokens) {
			warnings = append(warnings, Warning{Char: u.Char, Pos: u.Pos})
		}
		unrecognizedChars.Add(float64(len(warnings)))
	}
	return out, warnings
}

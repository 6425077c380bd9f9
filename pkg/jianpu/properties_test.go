package jianpu

import (
	"strings"
	"testing"

	"github.com/harmonica-tools/jianpu/internal/testutil/statespace"
	"github.com/harmonica-tools/jianpu/parser"
)

func nonNotation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune("1234567#b♭()[]（）【】", r) {
			return -1
		}
		return r
	}, s)
}

func countNotes(s string) int {
	n := 0
	for _, tok := range parser.Tokenize(s) {
		if _, ok := tok.(parser.Note); ok {
			n++
		}
	}
	return n
}

func transpose(text, target, source string) string {
	out, _ := TransposeSheet(text, target, source)
	return out
}

func TestSheetProperties(t *testing.T) {
	appendText := func(suffix string) func(string) string {
		return func(s string) string { return s + suffix }
	}
	wrap := func(open, close string) func(string) string {
		return func(s string) string { return open + s + close }
	}

	statespace.Test(func(s string) string { return transpose(s, "A", "C") }).
		WithInitialState(func() string { return "5" }).
		WithMutation("scale", appendText("1 2 3 4 5 6 7")).
		WithMutation("sharp", appendText("#4")).
		WithMutation("flat", appendText("b7")).
		WithMutation("bar", appendText(" | ")).
		WithMutation("symbol", appendText("@")).
		WithMutation("low octave", wrap("(", ")")).
		WithMutation("high octave", wrap("[", "]")).
		WithMutation("full-width low octave", wrap("（", "）")).
		WithMutation("unmatched bracket", wrap("(", "")).
		WithInvariant("literals preserved", func(s, result string) bool {
			return nonNotation(s) == nonNotation(result)
		}).
		WithInvariant("note count preserved", func(s, result string) bool {
			return countNotes(s) == countNotes(result)
		}).
		WithInvariant("round trip", func(s, result string) bool {
			return transpose(result, "C", "A") == transpose(s, "C", "C")
		}).
		WithInvariant("same key is stable", func(s, _ string) bool {
			once := transpose(s, "Eb", "Eb")
			return transpose(once, "Eb", "Eb") == once
		}).
		Evaluate(t)
}

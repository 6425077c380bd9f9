package pitch

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ParseKey parses a key as written on the command line or in a sheet header.
//
// Supported syntax:
// - `D`, `d`: tonic letter in either case
// - `C#`, `Db`, `DB`, `D♭`: tonic followed by an accidental
// - `1=D`: the jianpu key signature form
//
// Names that parse but have no entry in the key table (e.g. `E#`) return ErrUnknownKey.
func ParseKey(spec string) (Key, error) {
	name, err := CanonicalName(spec)
	if err != nil {
		return C, err
	}
	return keyOffsets[name], nil
}

// CanonicalName returns the key table spelling of spec, e.g. "G" for "1=g" and "Bb"
// for "B♭".
func CanonicalName(spec string) (string, error) {
	ast, err := keyParser.ParseString("", spec)
	if err != nil {
		return "", err
	}

	name := strings.ToUpper(ast.Tonic)
	switch ast.Accidental {
	case "":
	case "#":
		name += "#"
	default:
		name += "b"
	}
	if _, ok := keyOffsets[name]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, spec)
	}
	return name, nil
}

var keyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Tonic", Pattern: `[A-Ga-g]`},
	{Name: "Accidental", Pattern: `[#♭]`},
	{Name: "Degree", Pattern: `1`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var keyParser = participle.MustBuild[keySpecAST](
	participle.Lexer(keyLexer),
	participle.Elide("Whitespace"),
)

type keySpecAST struct {
	Signature  bool   `parser:"( @\"1\" \"=\" )?"`
	Tonic      string `parser:"@Tonic"`
	Accidental string `parser:"@( \"#\" | \"b\" | \"B\" | \"♭\" )?"`
}

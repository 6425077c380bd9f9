package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/v2/stacks/arraystack"
)

var bracketReplacer = strings.NewReplacer(
	"（", "(",
	"）", ")",
	"【", "[",
	"】", "]",
)

// Normalize replaces full-width brackets with their ASCII equivalents.
func Normalize(text string) string {
	return bracketReplacer.Replace(text)
}

// segment is a matched bracket pair currently being scanned.
// end is the index of its closing bracket.
type segment struct {
	end    int
	octave int
}

type lexer struct {
	input []rune
	raw   []string // source bytes of each rune; differs from input only for invalid UTF-8
	pos   int

	// closes[i] is the index of the bracket closing the one at i, or -1.
	closes []int

	frames *arraystack.Stack[segment]
	tokens []Token
}

// Tokenize splits text into notes and literals. It never fails: anything that can't be
// read as a note is returned as a Literal. Bytes that aren't valid UTF-8 are kept as
// literals unchanged.
//
// Brackets are matched by counting only brackets of the same kind within the enclosing
// segment, so `[(]1)` yields a literal "(" at octave +1 followed by a note at octave 0.
func Tokenize(text string) []Token {
	l := &lexer{frames: arraystack.New[segment]()}
	l.decode(Normalize(text))
	l.matchBrackets()
	l.scan()
	return l.tokens
}

func (l *lexer) decode(s string) {
	l.input = make([]rune, 0, len(s))
	l.raw = make([]string, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		l.input = append(l.input, r)
		l.raw = append(l.raw, s[i:i+size])
		i += size
	}
}

// matchBrackets pairs each bracket with its closer in one pass. A forward balance count
// from an opener stops at the same index, so a segment-scoped match is the global match
// when it lies inside the segment and no match otherwise.
func (l *lexer) matchBrackets() {
	l.closes = make([]int, len(l.input))
	parens := arraystack.New[int]()
	squares := arraystack.New[int]()
	for i, r := range l.input {
		l.closes[i] = -1
		switch r {
		case '(':
			parens.Push(i)
		case '[':
			squares.Push(i)
		case ')':
			if j, ok := parens.Pop(); ok {
				l.closes[j] = i
			}
		case ']':
			if j, ok := squares.Pop(); ok {
				l.closes[j] = i
			}
		}
	}
}

func (l *lexer) scan() {
	for l.pos < len(l.input) {
		if top, ok := l.frames.Peek(); ok && l.pos == top.end {
			l.frames.Pop()
			l.pos++ // closing bracket
			continue
		}

		switch r := l.input[l.pos]; r {
		case '(':
			l.open(-1)
		case '[':
			l.open(+1)
		case '#':
			l.accidental(Sharp)
		case 'b', '♭':
			l.accidental(Flat)
		default:
			if isDegree(r) {
				l.emitNote(Natural, l.pos)
				l.pos++
				continue
			}
			l.emitLiteral()
		}
	}
}

// open enters the segment started by the bracket at l.pos, or emits the bracket as a
// literal when the segment has no matching close.
func (l *lexer) open(shift int) {
	end := l.closes[l.pos]
	if end < 0 || end >= l.limit() {
		l.emitLiteral()
		return
	}
	l.frames.Push(segment{end: end, octave: l.octave() + shift})
	l.pos++
}

func (l *lexer) accidental(acc Accidental) {
	next := l.pos + 1
	if next < l.limit() && isDegree(l.input[next]) {
		l.emitNote(acc, next)
		l.pos = next + 1
		return
	}
	l.emitLiteral()
}

func (l *lexer) emitNote(acc Accidental, digitPos int) {
	l.tokens = append(l.tokens, Note{
		Degree:     int(l.input[digitPos] - '0'),
		Accidental: acc,
		Octave:     l.octave(),
		Pos:        l.pos,
	})
}

func (l *lexer) emitLiteral() {
	l.tokens = append(l.tokens, Literal{Text: l.raw[l.pos], Pos: l.pos})
	l.pos++
}

func (l *lexer) octave() int {
	if top, ok := l.frames.Peek(); ok {
		return top.octave
	}
	return 0
}

// limit is the end of the innermost open segment.
func (l *lexer) limit() int {
	if top, ok := l.frames.Peek(); ok {
		return top.end
	}
	return len(l.input)
}

func isDegree(r rune) bool { return r >= '1' && r <= '7' }

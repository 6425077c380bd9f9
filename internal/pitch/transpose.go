package pitch

import "github.com/harmonica-tools/jianpu/parser"

// semitones above the tonic for each degree of the major scale.
var degreeSemitones = [8]int{1: 0, 2: 2, 3: 4, 4: 5, 5: 7, 6: 9, 7: 11}

type spelling struct {
	degree     int
	accidental parser.Accidental
}

// spellings maps a semitone above the tonic back to a degree. Black keys are always
// spelled as sharps.
var spellings = [12]spelling{
	{1, parser.Natural},
	{1, parser.Sharp},
	{2, parser.Natural},
	{2, parser.Sharp},
	{3, parser.Natural},
	{4, parser.Natural},
	{4, parser.Sharp},
	{5, parser.Natural},
	{5, parser.Sharp},
	{6, parser.Natural},
	{6, parser.Sharp},
	{7, parser.Natural},
}

// Transpose rewrites every note from the source key to the target key. Literals are
// returned unchanged and the input slice is not modified.
func Transpose(tokens []parser.Token, source, target Key) []parser.Token {
	out := make([]parser.Token, len(tokens))
	var notes int
	for i, tok := range tokens {
		switch t := tok.(type) {
		case parser.Note:
			out[i] = TransposeNote(t, source, target)
			notes++
		case parser.Literal:
			out[i] = t
		}
	}
	notesTransposed.Add(float64(notes))
	return out
}

// TransposeNote moves one note through absolute pitch into the target key's degrees.
func TransposeNote(n parser.Note, source, target Key) parser.Note {
	rel := AbsolutePitch(n, source) - int(target)
	octave, semitone := FloorDivMod(rel, 12)
	sp := spellings[semitone]
	return parser.Note{
		Degree:     sp.degree,
		Accidental: sp.accidental,
		Octave:     octave,
		Pos:        n.Pos,
	}
}

// AbsolutePitch is the note's semitone distance from the reference C. Degrees outside
// 1..7 continue the scale into neighbouring octaves, so 8 is the next octave's 1 and 0
// the previous octave's 7.
func AbsolutePitch(n parser.Note, key Key) int {
	octaves, step := FloorDivMod(n.Degree-1, 7)
	base := degreeSemitones[step+1] + octaves*12
	return base + int(n.Accidental) + int(key) + n.Octave*12
}

// FloorDivMod returns floor(x/m) and the non-negative remainder, so q*m+r == x.
func FloorDivMod(x, m int) (q, r int) {
	q, r = x/m, x%m
	if r < 0 {
		q--
		r += m
	}
	return q, r
}

package pitch

import "errors"

var ErrUnknownKey = errors.New("unknown key")

// Key is the signed semitone distance of a key's tonic from C, using the 10-hole
// harmonica layout where G is the lowest key and F# the highest.
type Key int

const C Key = 0

var keyOffsets = map[string]Key{
	"G": -5, "G#": -4, "Ab": -4,
	"A": -3, "A#": -2, "Bb": -2,
	"B": -1,
	"C": 0, "C#": 1, "Db": 1,
	"D": 2, "D#": 3, "Eb": 3,
	"E": 4,
	"F": 5, "F#": 6, "Gb": 6,
}

// Names returns the canonical key names.
func Names() []string {
	names := make([]string, 0, len(keyOffsets))
	for name := range keyOffsets {
		names = append(names, name)
	}
	return names
}

// LookupKey resolves any spelling ParseKey accepts ("db", "DB", "D♭" and "1=Db" all mean Db).
func LookupKey(spec string) (Key, bool) {
	k, err := ParseKey(spec)
	return k, err == nil
}

// KeyOffset resolves a key spec, treating anything ParseKey rejects as C.
func KeyOffset(spec string) Key {
	k, _ := LookupKey(spec)
	return k
}

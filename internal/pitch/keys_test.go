package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyOffset(t *testing.T) {
	assert.Equal(t, Key(0), KeyOffset("C"))
	assert.Equal(t, Key(-5), KeyOffset("G"))
	assert.Equal(t, Key(6), KeyOffset("F#"))
	assert.Equal(t, KeyOffset("C#"), KeyOffset("Db"))
	assert.Equal(t, KeyOffset("Bb"), KeyOffset("bb"))
	assert.Equal(t, KeyOffset("Eb"), KeyOffset("EB"))
	assert.Equal(t, Key(1), KeyOffset("DB"))
	assert.Equal(t, Key(-5), KeyOffset("1=G"))
	assert.Equal(t, Key(-2), KeyOffset("B♭"))
	assert.Equal(t, Key(2), KeyOffset(" d "))
	assert.Equal(t, Key(0), KeyOffset("H"))
	assert.Equal(t, Key(0), KeyOffset("E#"))
	assert.Equal(t, Key(0), KeyOffset(""))
	assert.Len(t, Names(), 17)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected Key
		err      error
		invalid  bool
	}{
		{name: "plain", spec: "D", expected: 2},
		{name: "tonic-c", spec: "C", expected: 0},
		{name: "lowercase", spec: "g", expected: -5},
		{name: "sharp", spec: "C#", expected: 1},
		{name: "flat", spec: "Db", expected: 1},
		{name: "flat-glyph", spec: "B♭", expected: -2},
		{name: "lowercase-flat", spec: "bb", expected: -2},
		{name: "uppercase-flat", spec: "DB", expected: 1},
		{name: "signature", spec: "1=F#", expected: 6},
		{name: "signature-spaced", spec: "1 = A", expected: -3},
		{name: "not-in-table", spec: "E#", err: ErrUnknownKey, invalid: true},
		{name: "bad-letter", spec: "H", invalid: true},
		{name: "trailing", spec: "C major", invalid: true},
		{name: "empty", spec: "", invalid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, err := ParseKey(tc.spec)
			if tc.invalid {
				require.Error(t, err)
				if tc.err != nil {
					assert.ErrorIs(t, err, tc.err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, k)
		})
	}
}

// Every spelling ParseKey accepts must resolve to the same key through KeyOffset.
func TestKeyOffsetAgreesWithParseKey(t *testing.T) {
	specs := []string{"1=G", "1 = g", "B♭", "DB", "db", "Eb", "eB", "C#", "c#", "F#", "1=F#", "A", "H", "E#", "Cb", "", "C major"}
	for _, spec := range specs {
		k, err := ParseKey(spec)
		_, ok := LookupKey(spec)
		assert.Equal(t, err == nil, ok, "spec %q", spec)
		assert.Equal(t, k, KeyOffset(spec), "spec %q", spec)
	}
}

func TestCanonicalName(t *testing.T) {
	tests := map[string]string{
		"1=g":  "G",
		"B♭":   "Bb",
		"DB":   "Db",
		"c#":   "C#",
		" a ":  "A",
		"1=Eb": "Eb",
	}
	for spec, expected := range tests {
		name, err := CanonicalName(spec)
		require.NoError(t, err, "spec %q", spec)
		assert.Equal(t, expected, name, "spec %q", spec)
	}

	_, err := CanonicalName("E#")
	assert.ErrorIs(t, err, ErrUnknownKey)
	_, err = CanonicalName("H")
	assert.Error(t, err)
}

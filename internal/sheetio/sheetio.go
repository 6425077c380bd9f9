// Package sheetio handles reading sheets and writing results and warning reports.
package sheetio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emirpasic/gods/v2/sets/treeset"

	"github.com/harmonica-tools/jianpu/pkg/jianpu"
)

// ReadSheet returns the content of the file named by arg. When arg can't be read as a
// file it is treated as the sheet itself.
func ReadSheet(arg string) (text string, fromFile bool) {
	raw, err := os.ReadFile(arg)
	if err != nil {
		return arg, false
	}
	return string(raw), true
}

// Header is the first line of every transposition result.
func Header(source, target string) string {
	return fmt.Sprintf("=== Transposed from %s to %s ===\n", strings.ToUpper(source), strings.ToUpper(target))
}

// FormatWarnings lists each distinct unrecognized character once, in code point order.
// It returns an empty string when there is nothing to report.
func FormatWarnings(warnings []jianpu.Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	chars := treeset.New[rune]()
	for _, w := range warnings {
		chars.Add(w.Char)
	}

	var b strings.Builder
	b.WriteString("Unrecognized characters were kept as-is:\n")
	for _, c := range chars.Values() {
		fmt.Fprintf(&b, "  '%c' (Unicode: U+%04X)\n", c, c)
	}
	return b.String()
}

// Emit writes content to path, or to fallback when path is empty.
func Emit(path, content string, fallback io.Writer) error {
	if path == "" {
		_, err := io.WriteString(fallback, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

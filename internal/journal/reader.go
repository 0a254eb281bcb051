package journal

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Lines yields the non-empty lines of the file in the order they were
// written. Reading starts from the beginning of the file every time the
// sequence is ranged over.
//
// Reads are best effort: a line that is not valid UTF-8 is treated as empty
// and skipped, and a read error ends the sequence early instead of failing.
func (d *Day) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if d == nil || d.file == nil {
			return
		}
		if _, err := d.file.Seek(0, io.SeekStart); err != nil {
			return
		}

		r := bufio.NewReader(d.file)
		for {
			raw, err := r.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return
			}
			if line := cleanLine(raw); line != "" {
				if !yield(line) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}
}

// ReadAll collects Lines into a slice.
func (d *Day) ReadAll() []string {
	var lines []string
	for line := range d.Lines() {
		lines = append(lines, line)
	}
	return lines
}

func cleanLine(raw string) string {
	line := strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")
	if !utf8.ValidString(line) {
		return ""
	}
	return line
}

package formatter

import "strings"

// Marker must be the first line of every checked file
const Marker = "#⭐#"

// HasMarker reports whether the first line is the marker, ignoring a
// byte-order mark and surrounding whitespace.
func HasMarker(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	first := strings.TrimPrefix(lines[0], "\ufeff")
	return strings.TrimSpace(first) == Marker
}

// EnsureMarker returns lines with the marker at line 1 and whether it had
// to be inserted. The new line uses the file's own line ending.
func EnsureMarker(lines []string) ([]string, bool) {
	if HasMarker(lines) {
		return lines, false
	}
	ending := "\n"
	if len(lines) > 0 {
		if e := lineEnding(lines[0]); e != "" {
			ending = e
		}
	}
	return append([]string{Marker + ending}, lines...), true
}

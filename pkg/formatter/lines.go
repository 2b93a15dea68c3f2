package formatter

import "strings"

// SplitLines splits text into lines, each keeping its terminator.
// "\n", "\r\n" and a lone "\r" all end a line; a trailing fragment
// without a terminator is kept as the last line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i+1])
			start = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// lineEnding returns the terminator of line, or "" if it has none
func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	case strings.HasSuffix(line, "\r"):
		return "\r"
	}
	return ""
}

func stripLineEnding(line string) string {
	return line[:len(line)-len(lineEnding(line))]
}

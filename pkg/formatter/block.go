package formatter

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const futurePrefix = "from __future__ import"

// Block is a half-open range [Start, End) of line indices holding
// consecutive import statements.
type Block struct {
	Start int
	End   int
}

// Len returns the number of lines in the block
func (b Block) Len() int {
	return b.End - b.Start
}

// isImportLine matches on the raw line: indented imports do not count.
func isImportLine(line string) bool {
	return strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "from ")
}

// FindBlocks returns the maximal runs of import lines in ascending order.
// A blank or any other line ends the current run.
func FindBlocks(lines []string) []Block {
	var blocks []Block
	for i := 0; i < len(lines); {
		if !isImportLine(lines[i]) {
			i++
			continue
		}
		start := i
		for i < len(lines) && isImportLine(lines[i]) {
			i++
		}
		blocks = append(blocks, Block{Start: start, End: i})
	}
	return blocks
}

// importKey orders __future__ imports first, then shorter lines before longer ones.
type importKey struct {
	rank   int
	length int
}

func keyOf(line string) importKey {
	clean := strings.TrimRightFunc(line, unicode.IsSpace)
	rank := 1
	if strings.HasPrefix(clean, futurePrefix) {
		rank = 0
	}
	return importKey{rank: rank, length: utf8.RuneCountInString(clean)}
}

func compareKeys(a, b importKey) int {
	if c := cmp.Compare(a.rank, b.rank); c != 0 {
		return c
	}
	return cmp.Compare(a.length, b.length)
}

// NormalizeBlock returns the canonical form of an import block: blank lines
// dropped, lines stable-sorted by (__future__ first, trimmed length), and a
// blank line after every groupSize-th line except at the very end.
// A groupSize of zero or less never inserts blank lines.
func NormalizeBlock(block []string, groupSize int) []string {
	imports := make([]string, 0, len(block))
	for _, line := range block {
		if strings.TrimSpace(line) != "" {
			imports = append(imports, line)
		}
	}
	if len(imports) == 0 {
		return []string{}
	}

	slices.SortStableFunc(imports, func(a, b string) int {
		return compareKeys(keyOf(a), keyOf(b))
	})
	keepUnterminatedLast(imports)

	separator := lineEnding(imports[0])
	if separator == "" {
		separator = "\n"
	}

	result := make([]string, 0, len(imports)+len(imports)/max(groupSize, 1))
	for i, line := range imports {
		result = append(result, line)
		if groupSize > 0 && (i+1)%groupSize == 0 && i+1 < len(imports) {
			result = append(result, separator)
		}
	}
	return result
}

// keepUnterminatedLast handles a block that ends the file without a final
// newline. Whichever line the sort put last gives up its terminator and the
// unterminated one receives it, so no two lines are ever joined.
func keepUnterminatedLast(lines []string) {
	missing := false
	ending := "\n"
	for _, line := range lines {
		if e := lineEnding(line); e == "" {
			missing = true
		} else {
			ending = e
		}
	}
	if !missing {
		return
	}
	last := len(lines) - 1
	for i := range lines[:last] {
		if lineEnding(lines[i]) == "" {
			lines[i] += ending
		}
	}
	lines[last] = stripLineEnding(lines[last])
}

// Normalize rewrites every import block of lines into its canonical form.
// It returns the patched lines and the original ranges of the blocks that
// differed. The input slice is not modified.
func Normalize(lines []string, groupSize int) ([]string, []Block) {
	patched := slices.Clone(lines)
	var drifted []Block

	// offset is the net line-count change of the blocks already rewritten;
	// it maps original indices onto patched.
	offset := 0
	for _, b := range FindBlocks(lines) {
		start, end := b.Start+offset, b.End+offset
		current := patched[start:end]
		desired := NormalizeBlock(current, groupSize)
		if slices.Equal(current, desired) {
			continue
		}
		patched = slices.Replace(patched, start, end, desired...)
		offset += len(desired) - b.Len()
		drifted = append(drifted, b)
	}
	return patched, drifted
}

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/siyuan-infoblox/christmastree-hook/pkg/errors"
)

// IsSourceFile reports whether path resolves to an existing regular file
// whose extension is one of extensions.
func IsSourceFile(path string, extensions []string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	return slices.Contains(extensions, filepath.Ext(path))
}

// ValidatePatterns checks that every exclude pattern is a well-formed glob
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf(errors.ErrMsgInvalidExcludePattern, p)
		}
	}
	return nil
}

// IsExcluded reports whether path matches any of the doublestar patterns.
// Paths are matched in slash form exactly as given, so patterns written
// relative to the repository root match the paths a git hook receives.
func IsExcluded(path string, patterns []string) bool {
	slashed := filepath.ToSlash(filepath.Clean(path))
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, slashed); err == nil && ok {
			return true
		}
	}
	return false
}

// ReadSource reads a UTF-8 file and drops a leading byte-order mark.
// Invalid UTF-8 is an error.
func ReadSource(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	return DecodeSource(raw)
}

// DecodeSource is the in-memory half of ReadSource
func DecodeSource(raw []byte) (string, error) {
	decoder := transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())
	text, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToDecodeFile, err)
	}
	return string(text), nil
}

// WriteSource writes text back as plain UTF-8 without a byte-order mark,
// keeping the file's existing permissions.
func WriteSource(path, text string) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), perm); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	return nil
}

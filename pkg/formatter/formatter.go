package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/siyuan-infoblox/christmastree-hook/pkg/config"
	"github.com/siyuan-infoblox/christmastree-hook/pkg/errors"
	"github.com/siyuan-infoblox/christmastree-hook/pkg/utils"
)

var pathColor = color.New(color.FgYellow, color.Bold)

type FormatterConfig struct {
	Fix        bool      // rewrite files instead of only reporting
	GroupSize  int       // blank line after every GroupSize imports
	Extensions []string  // eligible source-file extensions
	Exclude    []string  // doublestar patterns of paths to skip
	Out        io.Writer // destination of diagnostics, stdout when nil
}

// Summary aggregates the outcome of a ProcessFiles run
type Summary struct {
	Checked       int // eligible files processed
	NonConforming int // files reported or rewritten
	Failed        int // files that could not be read, decoded or written
}

// OK reports whether every eligible file was already conforming
func (s Summary) OK() bool {
	return s.NonConforming == 0 && s.Failed == 0
}

// formatter checks and rewrites import blocks file by file
type formatter struct {
	config FormatterConfig
}

// New creates a formatter. Unset extensions fall back to the defaults.
func New(cfg FormatterConfig) *formatter {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = config.DefaultExtensions
	}
	return &formatter{config: cfg}
}

func (f *formatter) getFix() bool {
	return f.config.Fix
}

func (f *formatter) getGroupSize() int {
	return f.config.GroupSize
}

func (f *formatter) report(format, path string, args ...any) {
	args = append([]any{pathColor.Sprint(path)}, args...)
	fmt.Fprintf(f.config.Out, format+"\n", args...)
}

// isEligible reports whether path is an existing regular source file that is not excluded
func (f *formatter) isEligible(path string) bool {
	return utils.IsSourceFile(path, f.config.Extensions) && !utils.IsExcluded(path, f.config.Exclude)
}

// CheckFile checks a single file and, in fix mode, rewrites it.
// It returns true only when the file was already conforming: a file that had
// to be rewritten is reported as not conforming so the edit gets reviewed.
func (f *formatter) CheckFile(path string) (bool, error) {
	text, err := utils.ReadSource(path)
	if err != nil {
		return false, err
	}
	lines := SplitLines(text)

	patched, drifted := Normalize(lines, f.getGroupSize())

	if !f.getFix() {
		if len(drifted) > 0 {
			b := drifted[0]
			f.report(errors.DiagMsgBlockNotNormalized, path, b.Start+1, b.End)
			return false, nil
		}
		if !HasMarker(lines) {
			f.report(errors.DiagMsgMissingMarker, path, Marker)
			return false, nil
		}
		return true, nil
	}

	patched, inserted := EnsureMarker(patched)
	if len(drifted) == 0 && !inserted {
		return true, nil
	}

	if err := utils.WriteSource(path, strings.Join(patched, "")); err != nil {
		return false, err
	}
	f.report(errors.DiagMsgAppliedEdits, path)
	return false, nil
}

// ProcessFiles checks every eligible path in order; ineligible paths are
// skipped silently. A file that fails to process is reported and the run
// continues with the next one. The returned error counts those failures.
func (f *formatter) ProcessFiles(paths []string) (Summary, error) {
	var summary Summary

	for _, path := range paths {
		if !f.isEligible(path) {
			continue
		}
		summary.Checked++

		conforming, err := f.CheckFile(path)
		if err != nil {
			fmt.Fprintf(f.config.Out, errors.InfoMsgErrorProcessing+"\n", path, err)
			summary.Failed++
			continue
		}
		if !conforming {
			summary.NonConforming++
		}
	}

	if summary.Failed > 0 {
		return summary, fmt.Errorf(errors.ErrMsgFilesFailedToCheck, summary.Failed)
	}
	return summary, nil
}

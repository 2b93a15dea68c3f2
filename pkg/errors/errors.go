package errors

// Error message constants for the christmastree hook
const (
	// File processing errors
	ErrMsgFailedToReadFile   = "failed to read file"
	ErrMsgFailedToDecodeFile = "failed to decode file as UTF-8"
	ErrMsgFailedToWriteFile  = "failed to write file"
	ErrMsgFilesFailedToCheck = "%d files failed to process"
	ErrMsgFilesNotConforming = "%d files are not conforming"

	// Configuration errors
	ErrMsgFailedToLoadConfig    = "failed to load config"
	ErrMsgUnknownConfigKeys     = "unknown config keys: %s"
	ErrMsgInvalidExcludePattern = "invalid exclude pattern %q"
	ErrMsgFailedToGetWorkingDir = "failed to get current working directory"

	// Diagnostics, one line per non-conforming block or modified file
	DiagMsgBlockNotNormalized = "%s: import block not normalized (lines %d-%d)"
	DiagMsgMissingMarker      = "%s: missing marker line %q"
	DiagMsgAppliedEdits       = "%s: applied suggested edits; stage them to accept"

	// Info messages
	InfoMsgErrorProcessing = "Error processing %s: %v"
)

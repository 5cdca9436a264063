package errors

import "errors"

// ErrNoFilePaths signals that the command line named an import but no files.
// The caller prints ErrMsgNoJavaFiles itself, so this error stays silent.
var ErrNoFilePaths = errors.New("no Java file paths provided")

// Message constants for the java-import-add application. The console lines
// built from OkMsg/InfoMsg/WarnMsg constants are a stable output contract;
// scripts grep for them verbatim, including the em-dash (U+2014) in
// InfoMsgAlreadyPresent.
const (
	// Per-file results
	OkMsgAdded            = "Added: %s -> %s"
	InfoMsgAlreadyPresent = "Import already present in %s — skipping"
	InfoMsgWouldAdd       = "Would add: %s -> %s (dry-run)"
	WarnMsgNotAFile       = "Skipping: not a file: %s"
	WarnMsgNonJavaFile    = "Skipping non-Java file: %s"

	// Usage errors
	ErrMsgNoJavaFiles = "Provide at least one Java file path"

	// File processing errors
	ErrMsgFailedToReadFile     = "failed to read file"
	ErrMsgFailedToWriteFile    = "failed to write file"
	ErrMsgFailedToFindJava     = "failed to find Java files in directory"
	ErrMsgProcessFailed        = "Failed to process %s: %v"
	ErrMsgFilesFailedToProcess = "%d files failed to process"

	// Verbose-mode details
	InfoMsgNoJavaFilesFound = "No Java files found in directory: %s"
	InfoMsgFoundJavaFiles   = "Found %d Java files in directory: %s"
	InfoMsgImplicitType     = "Note: %s is a java.lang type and is imported implicitly"
	InfoMsgSummary          = "Processed %d files: %d added, %d already present, %d skipped"
)

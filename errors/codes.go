// Package errors provides the structured error handling system shared by the
// capfs toolkit. It extends Go's standard error handling with string error
// codes, retry classification, and context preservation while remaining fully
// compatible with errors.Is, errors.As, and errors.Unwrap.
package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural serialization.
type ErrorCode string

const (
	// Construction errors.

	// CodeInvalidName indicates a path fragment or entry name is empty,
	// absolute, or otherwise not usable where a bare segment is required.
	CodeInvalidName ErrorCode = "INVALID_NAME"

	// CodeLineage indicates a parent failed the capped-family or
	// temp-lineage check during boundary construction.
	CodeLineage ErrorCode = "LINEAGE_VIOLATION"

	// CodePattern indicates a glob pattern failed to compile.
	CodePattern ErrorCode = "INVALID_PATTERN"

	// Filesystem errors.

	// CodeIO indicates an operating system call failed.
	CodeIO ErrorCode = "IO_FAILURE"

	// CodeNotFound indicates a file or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a file or directory already exists.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeNotEmpty indicates a non-recursive delete hit a directory
	// that still has children.
	CodeNotEmpty ErrorCode = "DIRECTORY_NOT_EMPTY"

	// Generic errors.

	// CodeInternal indicates an internal invariant was violated.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

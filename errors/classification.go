package errors

// ErrorClassification indicates whether an error should trigger a retry.
// The toolkit never retries on its own; classification exists so callers
// can implement their own retry policy.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed
	// on retry. Example: a transient I/O failure.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on
	// retry. Examples: invalid names, lineage violations, missing paths.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Transient OS failures may clear on retry.
	CodeIO: ClassificationRetryable,

	// Everything construction- or state-shaped is permanent.
	CodeInvalidName:   ClassificationPermanent,
	CodeLineage:       ClassificationPermanent,
	CodePattern:       ClassificationPermanent,
	CodeNotFound:      ClassificationPermanent,
	CodeAlreadyExists: ClassificationPermanent,
	CodeNotEmpty:      ClassificationPermanent,
	CodeInternal:      ClassificationPermanent,
	CodeUnknown:       ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}

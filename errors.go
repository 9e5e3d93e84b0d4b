package svg2font

import "errors"

// Fault taxonomy of the pipeline. Errors returned by the generator wrap one
// of these sentinels; use errors.Is to classify.
var (
	// ErrInvalidGeometry reports a degenerate view-box (zero width or
	// height) or a contour the extractor could not make sense of.
	// Per-icon: the offending icon is skipped unless FailFast is set.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInconsistentWinding reports contour polarity the outline builder
	// could not resolve with the largest-contour-is-outer convention.
	// Per-icon: the offending icon is skipped unless FailFast is set.
	ErrInconsistentWinding = errors.New("inconsistent winding")

	// ErrDuplicateIconName reports two source files mapping to the same
	// stable icon name (case-insensitive). Always aborts the run.
	ErrDuplicateIconName = errors.New("duplicate icon name")

	// ErrCodepointRangeExhausted reports more icons than the Private Use
	// Area sub-range U+E000..U+F8FF can address. Always aborts the run.
	ErrCodepointRangeExhausted = errors.New("codepoint range exhausted")

	// ErrSerialization reports the binary table serializer rejecting the
	// assembled tables. Always aborts the run.
	ErrSerialization = errors.New("font serialization failed")

	// ErrInternal reports a violated invariant the pipeline itself should
	// have guaranteed. Always a programming defect, never user-recoverable.
	ErrInternal = errors.New("internal consistency fault")
)

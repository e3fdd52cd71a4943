package triage

import "errors"

var (
	// ErrEmptyInput means neither text nor image was supplied. Rejected
	// before any classifier or generator call.
	ErrEmptyInput = errors.New("must supply text or image")

	// ErrInvalidLimit means a history page size outside the allowed range.
	ErrInvalidLimit = errors.New("invalid page limit")
)

package classifier

import "errors"

var (
	// ErrModelUnavailable means the model artifact is missing or could not
	// be loaded. Fatal to the request; surfaced as a server error.
	ErrModelUnavailable = errors.New("classifier model unavailable")

	// ErrInference means the image could not be decoded or the forward
	// pass failed. Fatal to the request; surfaced as a server error.
	ErrInference = errors.New("image inference failed")
)

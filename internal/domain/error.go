package domain

import "errors"

// Terminal pipeline errors: no product-specific reply is possible. Per-step
// failures further down the pipeline degrade the reply instead and are
// reported as absences, not errors.
var (
	ErrExtractionFailed   = errors.New("no product link found in message")
	ErrResolutionFailed   = errors.New("could not resolve link to a terminal URL")
	ErrIdentifierNotFound = errors.New("could not extract product id from resolved URL")
)

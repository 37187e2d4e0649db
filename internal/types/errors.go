package types

import "errors"

// Error kinds handlers map onto HTTP statuses. Wrap with fmt.Errorf
// and %w so errors.Is still matches after annotation.
var (
	// ErrValidation marks bad form input, caught before any model call.
	ErrValidation = errors.New("validation failed")
	// ErrGenerationFailed covers network, rate-limit and empty-response
	// failures from the generative model. Not retried.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrNotFound marks a missing persisted record.
	ErrNotFound = errors.New("not found")
)

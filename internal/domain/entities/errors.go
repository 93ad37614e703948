package entities

import "errors"

// Validation errors returned by the dilation engine. These are the only
// error kinds the engine produces; velocities at or above light speed are
// clamped, not rejected.
var (
	ErrNegativeTime     = errors.New("time must be non-negative")
	ErrNegativeVelocity = errors.New("velocity must be non-negative")
)

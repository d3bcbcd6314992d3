package growth

import "errors"

// Domain errors for growth simulations.
var (
	// ErrOverflow indicates the next count no longer fits in an int64.
	ErrOverflow = errors.New("growth: count exceeds 64-bit range (reduce k or generations)")

	// ErrStartRange indicates a starting population below 1.
	ErrStartRange = errors.New("growth: start must be at least 1")

	// ErrKRange indicates a children-per-parent value below 1.
	ErrKRange = errors.New("growth: k must be at least 1")

	// ErrGenerationsRange indicates a generation count outside [1, MaxGenerations].
	ErrGenerationsRange = errors.New("growth: generations out of range")
)

// SimError wraps an error with the generation where the simulation stopped.
type SimError struct {
	Generation int
	Count      int64
	Wrapped    error
}

func (e *SimError) Error() string {
	return e.Wrapped.Error()
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}

package quantum

import "errors"

// Domain errors for solver operations.
var (
	// ErrInvalidDomain indicates bad grid bounds or size.
	ErrInvalidDomain = errors.New("quantum: invalid spatial domain")

	// ErrInvalidParameter indicates a potential or propagation parameter
	// outside its valid range.
	ErrInvalidParameter = errors.New("quantum: parameter out of valid bounds")

	// ErrNoConvergence indicates the eigensolver or a linear solve failed
	// to converge.
	ErrNoConvergence = errors.New("quantum: solver failed to converge")
)

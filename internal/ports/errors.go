package ports

import "errors"

// Standard application-level errors. Pipeline code returns these; the
// collaborator layer that owns the event feed decides how to report them.
var (
	ErrConfigurationError = errors.New("invalid or missing configuration")

	// ErrZeroBaseAmount marks an order whose base-token amount is zero, which
	// makes its unit price undefined. A data-quality condition, never a
	// pipeline-wide fault: the offending order is skipped and the rest of the
	// collection is processed normally.
	ErrZeroBaseAmount = errors.New("order has zero base-token amount")

	// ErrIncompleteTokenPair is returned by operations that cannot even start
	// without both tokens selected (e.g. CSV export). View accessors signal
	// the same condition with ok=false instead, since "no selection yet" is a
	// legitimate steady state rather than a fault.
	ErrIncompleteTokenPair = errors.New("token pair is not fully selected")
)

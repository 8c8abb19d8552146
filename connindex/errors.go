package connindex

import "errors"

// Sentinel errors for connindex operations. Callers should match them
// with errors.Is; wrap with fmt.Errorf("...: %w", err) for extra context
// at the call site rather than minting new sentinels for the same cause.
var (
	// ErrInvalidStops indicates a stop count outside [0, MaxStops].
	ErrInvalidStops = errors.New("connindex: stops out of range")

	// ErrDateOutOfRange indicates a day index outside [0, MaxDays) for a
	// departure day, an arrival day, or (from the rank package) a meeting
	// date. Shoulder days probed outside the horizon are not reported;
	// Outbound and Inbound return empty vectors for them.
	ErrDateOutOfRange = errors.New("connindex: date out of range")

	// ErrEmptyAirportCode indicates an empty origin or destination code.
	ErrEmptyAirportCode = errors.New("connindex: airport code is empty")
)

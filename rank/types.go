package rank

import "errors"

// Sentinel errors for Rank's own argument validation. Date-range failures
// reuse connindex.ErrDateOutOfRange directly rather than minting a
// second sentinel for the same condition.
var (
	// ErrNegativeShoulder indicates maxOutboundShoulder or
	// maxInboundShoulder was negative.
	ErrNegativeShoulder = errors.New("rank: shoulder tolerance must be >= 0")

	// ErrNegativeTake indicates take was negative.
	ErrNegativeTake = errors.New("rank: take must be >= 0")
)

// Origin is a weighted group origin: an airport code and the number of
// travelers departing from it. If the same code appears more than once
// in a Rank call's origins slice, the last occurrence's Count wins (see
// DESIGN.md, "Duplicate origin codes").
type Origin struct {
	Code  string
	Count int
}

// Destination is the scored result for a single candidate airport.
//
// AvailableOrigins sums, across both directions, the number of distinct
// group origins that can reach the candidate by meetingStart or leave it
// after meetingEnd within the tolerated shoulder window.
//
// TotalStops is a weighted connection-complexity score: 1 per one-stop
// leg actually used to cover an origin, 2 per two-stop leg, counted only
// against origins not already covered more cheaply on the same day (see
// stopsScore).
//
// Unavailable*Origins lists the group-origin codes not served in that
// direction, ascending by registration index, excluding the candidate's
// own code (a city is trivially its own origin — SPEC_FULL.md §4.4
// "Self-elimination rule").
//
// *ShoulderNights is the weighted count of shoulder nights actually
// consumed: an origin of weight w served on a shoulder day j days from
// the anchor contributes w*j.
type Destination struct {
	Code                       string
	AvailableOrigins           int
	TotalStops                 int
	UnavailableOutboundOrigins []string
	UnavailableInboundOrigins  []string
	OutboundShoulderNights     int
	InboundShoulderNights      int
}

package rendezvous

import (
	"time"

	"github.com/katalvlaran/rendezvous/connindex"
	"github.com/katalvlaran/rendezvous/rank"
)

// Planner is a thin convenience wrapper tying a connindex.Store to
// rank.Rank, for callers who don't need the two packages independently.
// It adds no behavior of its own beyond delegation.
type Planner struct {
	store *connindex.Store
}

// NewPlanner constructs a Planner backed by a fresh Store anchored at
// startDate. opts configure the underlying Store exactly as
// connindex.New does.
func NewPlanner(startDate time.Time, opts ...connindex.Option) *Planner {
	return &Planner{store: connindex.New(startDate, opts...)}
}

// Store returns the Planner's underlying connection index, for callers
// that need direct access (e.g. RegisterAirport or inspection).
func (p *Planner) Store() *connindex.Store { return p.store }

// AddConnection registers conn's endpoints if necessary and records it.
// See connindex.Store.SetConnection for validation and error semantics.
func (p *Planner) AddConnection(conn connindex.Connection) error {
	return p.store.SetConnection(conn)
}

// Rank scores and ranks every airport registered so far. See rank.Rank
// for full semantics.
func (p *Planner) Rank(
	origins []rank.Origin,
	meetingStart, meetingEnd time.Time,
	maxOutboundShoulder, maxInboundShoulder, take int,
) ([]rank.Destination, error) {
	return rank.Rank(p.store, origins, meetingStart, meetingEnd, maxOutboundShoulder, maxInboundShoulder, take)
}

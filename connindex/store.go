package connindex

import (
	"sync"
	"time"

	"github.com/katalvlaran/rendezvous/airport"
	"github.com/katalvlaran/rendezvous/internal/bitvec"
)

const millisPerDay = 24 * 60 * 60 * 1000

// DayIndex converts t into an integer day offset from start, matching
// SPEC_FULL.md §6: day offsets are the millisecond difference integer-
// divided by 86,400,000. Callers are expected to pass dates at midnight
// UTC; DayIndex does not normalize time-of-day.
func DayIndex(start, t time.Time) int {
	deltaMillis := t.UnixMilli() - start.UnixMilli()

	return int(deltaMillis / millisPerDay)
}

// Store is the bit-encoded connection index: component 4.2 of
// SPEC_FULL.md. It embeds an airport.Registry and grows its outbound and
// inbound arrays whenever a new airport is registered.
type Store struct {
	mu sync.RWMutex

	registry  *airport.Registry
	startDate time.Time
	maxStops  int
	maxDays   int

	// outbound[arrivalDay][anchorAirport][stops]: bit i set iff origin i
	// reaches anchorAirport on arrivalDay using stops intermediate stops.
	outbound [][][]*bitvec.BitVec

	// inbound[departureDay][anchorAirport][stops]: bit j set iff
	// anchorAirport reaches destination j on departureDay using stops
	// intermediate stops.
	inbound [][][]*bitvec.BitVec
}

// New constructs an empty Store anchored at startDate, with MaxStops and
// MaxDays defaulting to DefaultMaxStops and DefaultMaxDays.
func New(startDate time.Time, opts ...Option) *Store {
	cfg := newConfig(opts...)

	s := &Store{
		registry:  airport.NewRegistry(),
		startDate: startDate,
		maxStops:  cfg.maxStops,
		maxDays:   cfg.maxDays,
		outbound:  make([][][]*bitvec.BitVec, cfg.maxDays),
		inbound:   make([][][]*bitvec.BitVec, cfg.maxDays),
	}
	for d := 0; d < cfg.maxDays; d++ {
		s.outbound[d] = make([][]*bitvec.BitVec, 0)
		s.inbound[d] = make([][]*bitvec.BitVec, 0)
	}

	return s
}

// StartDate returns the Store's anchor date.
func (s *Store) StartDate() time.Time { return s.startDate }

// MaxStops returns the highest supported stop count.
func (s *Store) MaxStops() int { return s.maxStops }

// MaxDays returns the supported horizon, in days.
func (s *Store) MaxDays() int { return s.maxDays }

// DayIndex converts t into a day offset from the Store's start date.
func (s *Store) DayIndex(t time.Time) int { return DayIndex(s.startDate, t) }

// RegisterAirport registers code if it has not been seen before and, if
// so, extends the outbound and inbound arrays by one anchor slot on every
// day/stop cell. It reports true iff code was newly added.
func (s *Store) RegisterAirport(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registerLocked(code)
}

// registerLocked assumes mu is already held for writing.
func (s *Store) registerLocked(code string) bool {
	isNew := s.registry.Register(code)
	if !isNew {
		return false
	}

	for d := 0; d < s.maxDays; d++ {
		s.outbound[d] = append(s.outbound[d], newStopCells(s.maxStops))
		s.inbound[d] = append(s.inbound[d], newStopCells(s.maxStops))
	}

	return true
}

// newStopCells allocates one empty BitVec per supported stop count.
func newStopCells(maxStops int) []*bitvec.BitVec {
	cells := make([]*bitvec.BitVec, maxStops+1)
	for s := range cells {
		cells[s] = bitvec.New()
	}

	return cells
}

// IndexOf returns the index assigned to code, and false if it is unknown.
func (s *Store) IndexOf(code string) (int, bool) {
	return s.registry.IndexOf(code)
}

// CodeOf returns the code registered at index, and false if index is out
// of range.
func (s *Store) CodeOf(index int) (string, bool) {
	return s.registry.CodeOf(index)
}

// Size returns the number of registered airports.
func (s *Store) Size() int {
	return s.registry.Size()
}

// Codes returns every registered code, ascending by index.
func (s *Store) Codes() []string {
	return s.registry.Codes()
}

// SetConnection validates and stores a single connection. Validation
// happens entirely before any mutation: a failed call leaves both the
// registry and the bit arrays unchanged (§9 "Mutation safety").
func (s *Store) SetConnection(conn Connection) error {
	if conn.Origin == "" || conn.Destination == "" {
		return ErrEmptyAirportCode
	}
	// startDate, maxStops, and maxDays are fixed at construction (New),
	// so reading them here needs no lock.
	if conn.Stops < 0 || conn.Stops > s.maxStops {
		return ErrInvalidStops
	}

	arriveNextDay := 0
	if conn.ArriveNextDay {
		arriveNextDay = 1
	}

	departureDay := DayIndex(s.startDate, conn.Departure)
	if departureDay < 0 || departureDay >= s.maxDays {
		return ErrDateOutOfRange
	}
	arrivalDay := departureDay + arriveNextDay
	if arrivalDay < 0 || arrivalDay >= s.maxDays {
		return ErrDateOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validation above is stop/date-only and needs no registry lookups;
	// airports are registered only now that the call is known to succeed.
	s.registerLocked(conn.Origin)
	s.registerLocked(conn.Destination)

	origIdx, _ := s.registry.IndexOf(conn.Origin)
	destIdx, _ := s.registry.IndexOf(conn.Destination)

	s.outbound[arrivalDay][destIdx][conn.Stops].SetBit(uint(origIdx))
	s.inbound[departureDay][origIdx][conn.Stops].SetBit(uint(destIdx))

	return nil
}

// Outbound returns the bit vector of origin indices that reach anchor
// airport a on arrival day arrivalDay using exactly stops intermediate
// stops. The result is a copy taken under the read lock, so a later
// SetConnection does not change it. Out-of-range arguments return an
// empty BitVec rather than
// panicking: SPEC_FULL.md §7 treats shoulder-day under/overflow as a
// caller programming error, and this is the defensive fallback for it.
func (s *Store) Outbound(arrivalDay, a, stops int) *bitvec.BitVec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cellOrEmpty(s.outbound, arrivalDay, a, stops).Clone()
}

// Inbound returns the bit vector of destination indices reachable from
// anchor airport a on departure day departureDay using exactly stops
// intermediate stops. See Outbound for out-of-range behavior.
func (s *Store) Inbound(departureDay, a, stops int) *bitvec.BitVec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cellOrEmpty(s.inbound, departureDay, a, stops).Clone()
}

func cellOrEmpty(table [][][]*bitvec.BitVec, day, a, stops int) *bitvec.BitVec {
	if day < 0 || day >= len(table) {
		return bitvec.New()
	}
	if a < 0 || a >= len(table[day]) {
		return bitvec.New()
	}
	if stops < 0 || stops >= len(table[day][a]) {
		return bitvec.New()
	}

	return table[day][a][stops]
}

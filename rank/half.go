package rank

import "github.com/katalvlaran/rendezvous/internal/bitvec"

// halfResult is the outcome of scanning one direction (outbound or
// inbound) for a single candidate airport.
type halfResult struct {
	count          int
	stops          int
	shoulderNights int
	available      *bitvec.BitVec
}

// halfScanner walks the anchor day and, if coverage is incomplete, up to
// maxShoulder additional days in dayStep's direction, for one side of
// Rank's algorithm. An outbound scanner reads store.Outbound and steps
// backward (dayStep=-1) from the meeting-start anchor day; an inbound
// scanner reads store.Inbound and steps forward (dayStep=1) from the
// meeting-end anchor day. Everything else is identical between the two,
// which is why Rank builds one of these per direction instead of
// duplicating the loop.
type halfScanner struct {
	access        accessor
	anchorDay     int
	dayStep       int
	maxShoulder   int
	originsVector *bitvec.BitVec
	originCounts  map[string]int
	universe      uint
	n             int

	// store is used only to translate a satisfied bit index back into a
	// traveler-count lookup via its code.
	store interface {
		CodeOf(int) (string, bool)
	}
}

// run scans for candidate airport a and returns its halfResult.
func (h *halfScanner) run(a int) halfResult {
	available := h.access(h.anchorDay, a, 0).
		Or(h.access(h.anchorDay, a, 1)).
		Or(h.access(h.anchorDay, a, 2))

	res := halfResult{
		count:     int(available.And(h.originsVector).Count()),
		stops:     stopsScore(h.access, h.originsVector, h.anchorDay, a, h.universe),
		available: available,
	}

	if res.count >= h.n || h.maxShoulder <= 0 {
		return res
	}

	for j := 1; j <= h.maxShoulder; j++ {
		if res.count >= h.n {
			break
		}

		day := h.anchorDay + j*h.dayStep
		layer := h.access(day, a, 0).Or(h.access(day, a, 1)).Or(h.access(day, a, 2))
		needed := available.Not(h.universe).And(h.originsVector)

		res.stops += stopsScore(h.access, needed, day, a, h.universe)

		satisfiedNow := layer.And(needed)
		for _, idx := range satisfiedNow.Bits() {
			if code, ok := h.store.CodeOf(int(idx)); ok {
				res.shoulderNights += h.originCounts[code] * j
			}
		}
		res.count += int(satisfiedNow.Count())
		available = available.Or(layer)
	}
	res.available = available

	return res
}

// stopsScore scores the one-stop and two-stop coverage a candidate
// offers against mask on a single day, counting an origin only against
// the cheapest tier that actually serves it: a one-stop bit counts only
// if the origin isn't already directly reachable, and a two-stop bit
// counts only if neither direct nor one-stop coverage exists.
func stopsScore(access accessor, mask *bitvec.BitVec, day, a int, universe uint) int {
	direct := access(day, a, 0)
	oneStop := access(day, a, 1)
	twoStop := access(day, a, 2)

	directNotServed := direct.Not(universe).And(mask)
	oneStopHits := int(oneStop.And(directNotServed).Count())

	notOneStop := oneStop.Not(universe)
	twoStopHits := int(twoStop.And(directNotServed).And(notOneStop).Count())

	return oneStopHits + 2*twoStopHits
}

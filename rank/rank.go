package rank

import (
	"sort"
	"time"

	"github.com/katalvlaran/rendezvous/connindex"
	"github.com/katalvlaran/rendezvous/internal/bitvec"
)

// accessor reads one (day, anchor, stops) cell of a connindex.Store
// direction table. store.Outbound and store.Inbound both match this
// shape, which is what lets halfScanner treat the two directions
// symmetrically.
type accessor func(day, anchor, stops int) *bitvec.BitVec

// Rank scores every airport registered in store on how well it serves a
// group of weighted origins converging for a meeting running from
// meetingStart to meetingEnd, tolerating up to maxOutboundShoulder nights
// of early arrival and maxInboundShoulder nights of late departure.
//
// Duplicate codes in origins are folded into a code->count map before
// scoring; the last occurrence's Count wins. take=0 returns every
// candidate; take>0 truncates to the first take results after sorting.
// Results are sorted descending by AvailableOrigins with a stable sort, so
// candidates with equal AvailableOrigins keep registration order.
//
// Unknown origin codes are dropped from scoring but still counted toward
// N, the coverage target each shoulder loop runs against — see
// SPEC_FULL.md §9 and DESIGN.md for why this is preserved rather than
// "fixed".
func Rank(
	store *connindex.Store,
	origins []Origin,
	meetingStart, meetingEnd time.Time,
	maxOutboundShoulder, maxInboundShoulder, take int,
) ([]Destination, error) {
	if maxOutboundShoulder < 0 || maxInboundShoulder < 0 {
		return nil, ErrNegativeShoulder
	}
	if take < 0 {
		return nil, ErrNegativeTake
	}

	outboundAnchorDay := store.DayIndex(meetingStart)
	if outboundAnchorDay < 0 || outboundAnchorDay >= store.MaxDays() {
		return nil, connindex.ErrDateOutOfRange
	}
	inboundAnchorDay := store.DayIndex(meetingEnd)
	if inboundAnchorDay < 0 || inboundAnchorDay >= store.MaxDays() {
		return nil, connindex.ErrDateOutOfRange
	}

	originCounts := foldOrigins(origins)
	originsVector, universe := buildOriginsVector(store, originCounts)
	n := len(origins)

	outScan := halfScanner{
		store:         store,
		access:        store.Outbound,
		anchorDay:     outboundAnchorDay,
		dayStep:       -1,
		maxShoulder:   maxOutboundShoulder,
		originsVector: originsVector,
		originCounts:  originCounts,
		universe:      universe,
		n:             n,
	}
	inScan := halfScanner{
		store:         store,
		access:        store.Inbound,
		anchorDay:     inboundAnchorDay,
		dayStep:       1,
		maxShoulder:   maxInboundShoulder,
		originsVector: originsVector,
		originCounts:  originCounts,
		universe:      universe,
		n:             n,
	}

	size := store.Size()
	out := make([]Destination, size)
	for a := 0; a < size; a++ {
		code, _ := store.CodeOf(a)

		outHalf := outScan.run(a)
		inHalf := inScan.run(a)

		out[a] = Destination{
			Code:                       code,
			AvailableOrigins:           outHalf.count + inHalf.count,
			TotalStops:                 outHalf.stops + inHalf.stops,
			UnavailableOutboundOrigins: unavailableCodes(store, outHalf.available, originsVector, universe, a),
			UnavailableInboundOrigins:  unavailableCodes(store, inHalf.available, originsVector, universe, a),
			OutboundShoulderNights:     outHalf.shoulderNights,
			InboundShoulderNights:      inHalf.shoulderNights,
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvailableOrigins > out[j].AvailableOrigins
	})
	if take > 0 && take < len(out) {
		out = out[:take]
	}

	return out, nil
}

// foldOrigins collapses origins into a code->count map; the last
// occurrence of a repeated code wins.
func foldOrigins(origins []Origin) map[string]int {
	counts := make(map[string]int, len(origins))
	for _, o := range origins {
		counts[o.Code] = o.Count
	}

	return counts
}

// buildOriginsVector sets one bit per registered code present in counts
// and returns it alongside the current registered-airport count (the
// universe every Not call in this package is bounded to). Unknown codes
// are silently dropped, per SPEC_FULL.md §7 "UnknownOrigin".
func buildOriginsVector(store *connindex.Store, counts map[string]int) (*bitvec.BitVec, uint) {
	vec := bitvec.New()
	for code := range counts {
		if idx, ok := store.IndexOf(code); ok {
			vec.SetBit(uint(idx))
		}
	}

	return vec, uint(store.Size())
}

// unavailableCodes converts (¬available ∩ originsVector), with the
// candidate's own index removed, into ascending codes.
func unavailableCodes(store *connindex.Store, available, originsVector *bitvec.BitVec, universe uint, self int) []string {
	missing := available.Not(universe).And(originsVector)

	codes := make([]string, 0, missing.Count())
	for _, idx := range missing.Bits() {
		if int(idx) == self {
			continue
		}
		if code, ok := store.CodeOf(int(idx)); ok {
			codes = append(codes, code)
		}
	}

	return codes
}

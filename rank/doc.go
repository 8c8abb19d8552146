// Package rank implements the ranking engine: component 4.4 of
// SPEC_FULL.md, and the part of this module a caller actually invokes.
//
// Rank is a pure function of a *connindex.Store snapshot and its
// arguments — it has no state of its own, takes no lock beyond what the
// Store already provides, and performs no I/O.
//
// # Algorithm
//
// For every registered airport a, Rank evaluates two symmetric halves:
//
//   - Outbound: "can this group reach a by meetingStart?", scanning
//     connindex.Store.Outbound from the meeting-start anchor day backward
//     through up to maxOutboundShoulder prior days.
//   - Inbound: "can this group leave a after meetingEnd?", scanning
//     connindex.Store.Inbound from the meeting-end anchor day forward
//     through up to maxInboundShoulder following days.
//
// Each half tracks three running totals: how many distinct origins are
// covered so far (stopping the shoulder scan early once every origin is
// covered), a weighted stop count (stopsScore, scored per day against
// only the origins not already covered by a cheaper connection that day),
// and a weighted shoulder-night count (each newly covered origin
// contributes its traveler count times its distance from the anchor
// day). See stopsScore and the outbound/inbound walkers for the exact
// bitwise formula.
//
// # Complexity
//
// Time: O(A * (2 + maxOutboundShoulder + maxInboundShoulder) * A) where A
// is the registered airport count; each scanned day (the two anchor days
// and every shoulder day) costs a constant number of AND/OR/Count calls,
// O(A/64) each, and NOT calls, O(A) each (bitvec.Not tests every bit of
// the universe). Memory: O(A) for the result slice.
//
// # Errors
//
//   - connindex.ErrDateOutOfRange if meetingStart or meetingEnd falls
//     outside the store's configured day horizon.
//   - ErrNegativeShoulder if maxOutboundShoulder or maxInboundShoulder is
//     negative.
//   - ErrNegativeTake if take is negative.
//
// Unknown origin codes are not an error (SPEC_FULL.md §7
// "UnknownOrigin"): they are silently dropped from the origins bit vector
// but remain counted in N, the coverage target each shoulder loop runs
// against — see the package-level Open Question decision in DESIGN.md.
package rank

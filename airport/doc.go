// Package airport implements the dense-index airport registry: it assigns
// a non-negative integer index to every airport code the first time it is
// seen, and maintains the inverse index→code table. Indices are assigned
// monotonically in first-seen order and never change or get reclaimed.
//
// Invariant (P1 in SPEC_FULL.md §8): for every registered code c,
// CodeOf(IndexOf(c)) == c, and indices are contiguous from 0.
//
// Registry is the airport half of the connection index's handle; it holds
// no knowledge of dates, stops, or connections — those live in the
// connindex package, which embeds a Registry and grows its bit-matrix
// store whenever Register reports a newly added airport.
package airport

// Package bitvec provides the set-algebra primitives the connection index
// and ranking engine are built on: bitwise AND, OR, NOT, population count,
// and ascending enumeration of set bits, over a word-packed bit vector.
//
// BitVec is a thin, validated wrapper around github.com/bits-and-blooms/bitset.
// The wrapper exists for one reason: NOT. A bit vector's complement is only
// meaningful against a concrete universe (the current registered-airport
// count), so Not takes that universe explicitly and returns a vector
// bounded to [0, universe) rather than an unbounded complement with every
// high bit set — see §4.3 and §9 of SPEC_FULL.md ("NOT over sparse bit
// vectors"). Every other operation (And, Or, Count, Bits) delegates
// straight to the underlying *bitset.BitSet.
//
// Complexity: And/Or are O(universe/64); Not is O(universe), since it
// tests each bit of [0, universe) in turn; Count is O(universe/64);
// Bits is O(universe/64 + k) where k is the number of set bits returned.
package bitvec

package bitvec

import "github.com/bits-and-blooms/bitset"

// BitVec is an immutable-by-convention bit vector: And, Or, and Not return
// a new BitVec and never mutate their receiver or argument. SetBit is the
// only operation that writes to a BitVec's own storage.
type BitVec struct {
	set *bitset.BitSet
}

// New returns an empty BitVec. The underlying storage grows automatically
// as bits beyond its current word count are set.
func New() *BitVec {
	return &BitVec{set: bitset.New(0)}
}

// fromSet wraps an already-constructed bitset.BitSet without copying.
func fromSet(s *bitset.BitSet) *BitVec {
	return &BitVec{set: s}
}

// SetBit sets bit i. Setting an already-set bit is a no-op, matching the
// connection index's append-only, idempotent write semantics.
func (v *BitVec) SetBit(i uint) {
	v.set.Set(i)
}

// TestBit reports whether bit i is set.
func (v *BitVec) TestBit(i uint) bool {
	return v.set.Test(i)
}

// Clone returns an independent copy of v.
func (v *BitVec) Clone() *BitVec {
	return fromSet(v.set.Clone())
}

// And returns the bitwise intersection of v and other.
func (v *BitVec) And(other *BitVec) *BitVec {
	return fromSet(v.set.Intersection(other.set))
}

// Or returns the bitwise union of v and other.
func (v *BitVec) Or(other *BitVec) *BitVec {
	return fromSet(v.set.Union(other.set))
}

// Not returns the complement of v restricted to [0, universe): bit i of
// the result is set iff i < universe and bit i of v is clear. universe is
// always the registered-airport count at the point of the call, never an
// unbounded complement — see the package doc comment.
func (v *BitVec) Not(universe uint) *BitVec {
	out := bitset.New(universe)
	for i := uint(0); i < universe; i++ {
		if !v.set.Test(i) {
			out.Set(i)
		}
	}
	return fromSet(out)
}

// Count returns the population count (number of set bits) of v.
func (v *BitVec) Count() uint {
	return v.set.Count()
}

// Bits returns the indices of v's set bits in ascending order.
func (v *BitVec) Bits() []uint {
	bits := make([]uint, 0, v.set.Count())
	for i, ok := v.set.NextSet(0); ok; i, ok = v.set.NextSet(i + 1) {
		bits = append(bits, i)
	}

	return bits
}

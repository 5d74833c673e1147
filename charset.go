package urlbuf

import "github.com/bits-and-blooms/bitset"

// CharSet is a predicate over byte values, backed by a 256-bit bitmap so
// that membership tests are O(1) and branchless. CharSet values are
// immutable once constructed: Union always returns a new CharSet.
type CharSet struct {
	bits *bitset.BitSet
}

func newCharSet() CharSet {
	return CharSet{bits: bitset.New(256)}
}

// charSetFromFunc builds a CharSet by testing every byte value 0..255
// against fn. Used once, at init time, to build the named sets below.
func charSetFromFunc(fn func(byte) bool) CharSet {
	cs := newCharSet()
	for i := 0; i < 256; i++ {
		if fn(byte(i)) {
			cs.bits.Set(uint(i))
		}
	}

	return cs
}

// charSetFromBytes builds a CharSet containing exactly the given bytes.
func charSetFromBytes(bs ...byte) CharSet {
	cs := newCharSet()
	for _, b := range bs {
		cs.bits.Set(uint(b))
	}

	return cs
}

// Contains reports whether b belongs to the set.
func (c CharSet) Contains(b byte) bool {
	return c.bits.Test(uint(b))
}

// Union returns a new CharSet containing every byte in c or other.
func (c CharSet) Union(other CharSet) CharSet {
	return CharSet{bits: c.bits.Union(other.bits)}
}

// Without returns a new CharSet containing every byte in c that is not
// in other.
func (c CharSet) Without(other CharSet) CharSet {
	out := newCharSet()
	out.bits.InPlaceUnion(c.bits)
	out.bits.InPlaceDifference(other.bits)

	return out
}

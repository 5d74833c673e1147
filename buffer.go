package urlbuf

// UrlBuffer owns a single contiguous, percent-encoded byte buffer plus
// the Parts offset table describing where each component lives inside
// it. It exposes the one generic primitive, Resize, that every
// component setter and every SegmentsView/ParamsView mutator is built
// from (spec.md §4.4).
//
// A UrlBuffer is a single-writer resource (spec.md §5): views and
// iterators borrowed from it are valid only until the next mutating
// call on the same UrlBuffer.
type UrlBuffer struct {
	buf   []byte
	parts Parts
	alloc Allocator
}

// NewUrlBuffer returns an empty UrlBuffer (L=0) backed by the default,
// heap-growing allocator.
func NewUrlBuffer() *UrlBuffer {
	return NewUrlBufferWithAllocator(HeapAllocator{})
}

// NewUrlBufferWithAllocator returns an empty UrlBuffer backed by alloc.
func NewUrlBufferWithAllocator(alloc Allocator) *UrlBuffer {
	buf, err := alloc.Allocate(1) // just the NUL sentinel
	if err != nil {
		// An allocator that cannot satisfy a 1-byte request is
		// unusable; callers constructing such a thing get a clear
		// panic rather than a UrlBuffer that can never hold anything.
		panic(err)
	}
	buf[0] = 0

	return &UrlBuffer{buf: buf, alloc: alloc}
}

// NewStaticUrlBuffer returns an empty UrlBuffer whose storage is the
// caller-supplied backing array: it never allocates on the heap, and
// Resize fails with KindTooLarge once len(backing) is exhausted. This
// is the Go analogue of boost.url's static_url<Capacity> (see
// original_source/include/boost/url/static_url.hpp).
func NewStaticUrlBuffer(backing []byte) *UrlBuffer {
	return NewUrlBufferWithAllocator(NewStaticAllocator(backing))
}

// L returns the buffer's current logical length, not counting the
// trailing NUL sentinel.
func (b *UrlBuffer) L() int {
	return len(b.buf) - 1
}

// Parts exposes a read-only copy of the current offset table.
func (b *UrlBuffer) Parts() Parts {
	return b.parts
}

// Bytes returns the buffer's current logical content, not including
// the NUL sentinel. The returned slice is a borrow: it is invalidated
// by the next mutating call on b.
func (b *UrlBuffer) Bytes() []byte {
	return b.buf[:b.L()]
}

// region returns the current byte range backing component id, as a
// borrow invalidated by the next mutation.
func (b *UrlBuffer) region(id ComponentID) []byte {
	return b.buf[b.parts.Offset[id]:b.parts.Offset[id+1]]
}

// regionRange returns the current byte range [first, last), as a
// borrow invalidated by the next mutation.
func (b *UrlBuffer) regionRange(first, last ComponentID) []byte {
	return b.buf[b.parts.Offset[first]:b.parts.Offset[last]]
}

// Resize is shorthand for ResizeRange(id, id+1, newLen).
func (b *UrlBuffer) Resize(id ComponentID, newLen int) ([]byte, error) {
	return b.ResizeRange(id, id+1, newLen)
}

// ResizeRange reshapes the half-open component range [first, last) to
// newLen bytes, shifting the tail of the buffer and repairing every
// offset in one O(L) pass, then returns a borrow of the new region at
// Offset[first]. The bytes of the returned region are left undefined;
// the caller is expected to fill them in immediately.
//
// ResizeRange offers the strong exception-safety guarantee: if growth
// requires an allocation and that allocation fails, the buffer is left
// completely unchanged and the error is returned (spec.md §4.4).
func (b *UrlBuffer) ResizeRange(first, last ComponentID, newLen int) ([]byte, error) {
	if first >= last {
		return nil, invalidPartf("UrlBuffer.ResizeRange", ErrInvalidPart,
			"first id %s must precede last id %s", first, last)
	}
	if newLen < 0 {
		return nil, invalidPartf("UrlBuffer.ResizeRange", ErrInvalidPart, "negative length %d", newLen)
	}

	oldLen := b.parts.LengthRange(first, last)
	delta := newLen - oldLen
	if delta == 0 {
		return b.region(first)[:newLen], nil
	}

	oldL := b.L()
	newL := oldL + delta
	tailStart := b.parts.Offset[last]

	if delta < 0 {
		// memmove the tail (including the NUL sentinel) left by |delta|.
		copy(b.buf[tailStart+delta:newL+1], b.buf[tailStart:oldL+1])
		b.buf = b.buf[:newL+1]
	} else {
		needed := newL + 1
		if needed > cap(b.buf) {
			newBuf, err := b.alloc.Allocate(growCapacity(cap(b.buf), needed))
			if err != nil {
				return nil, err
			}
			copy(newBuf, b.buf[:oldL+1])
			old := b.buf
			b.buf = newBuf[:oldL+1]
			b.alloc.Deallocate(old)
		}

		b.buf = b.buf[:needed]
		copy(b.buf[tailStart+delta:newL+1], b.buf[tailStart:oldL+1])
	}

	b.buf[newL] = 0
	b.parts.repairOffsets(first, last, delta)

	return b.region(first)[:newLen], nil
}

// repairOffsets applies spec.md §4.4 steps 3/4 uniformly for either
// sign of delta: every id strictly between first and last collapses to
// the new offset of last (their region becomes empty, to be filled in
// by the caller); every id at or after last shifts by delta.
func (p *Parts) repairOffsets(first, last ComponentID, delta int) {
	newLastOffset := p.Offset[last] + delta
	for i := first + 1; i < last; i++ {
		p.Offset[i] = newLastOffset
	}
	for i := last; i <= IDEnd; i++ {
		p.Offset[i] += delta
	}
}

// spliceTokens is the shared resize-and-splice primitive behind both
// SegmentsView and ParamsView mutators: it replaces the byte range
// [absOff, absOff+oldTokenLen) inside region id with newTokens, and
// adjusts the component's structural count (NSeg for IDPath, NParam
// for IDQuery) by countDelta.
//
// Resize only reshuffles the buffer's tail starting at the region's
// *end*; bytes inside the region that sit after the edited token don't
// move on their own, so spliceTokens saves them first and re-places
// them once the region has its new length.
func (b *UrlBuffer) spliceTokens(id ComponentID, absOff, oldTokenLen int, newTokens []byte, countDelta int) error {
	regionOld := b.parts.Length(id)
	localOff := absOff - b.parts.Offset[id]
	tailLen := regionOld - (localOff + oldTokenLen)
	newRegionLen := localOff + len(newTokens) + tailLen

	var savedTail []byte
	if tailLen > 0 {
		old := b.region(id)
		savedTail = append([]byte(nil), old[localOff+oldTokenLen:localOff+oldTokenLen+tailLen]...)
	}

	if _, err := b.Resize(id, newRegionLen); err != nil {
		return err
	}

	start := b.parts.Offset[id]
	copy(b.buf[start+localOff:start+localOff+len(newTokens)], newTokens)
	if tailLen > 0 {
		copy(b.buf[start+localOff+len(newTokens):start+newRegionLen], savedTail)
	}

	switch id {
	case IDPath:
		b.parts.NSeg += countDelta
	case IDQuery:
		b.parts.NParam += countDelta
	}

	return nil
}

package urlbuf

// SegmentsView is a bidirectional facade over the path component's
// segments, built entirely on UrlBuffer.spliceTokens. It mirrors the
// teacher's approach of keeping one splice primitive and building
// higher-level collection semantics (insert/erase/replace) on top,
// generalized here from whole-string rebuilding to in-place resize.
//
// Insert, Erase and Replace require an abempty or absolute path (one
// that is empty or starts with '/'): every token they touch then
// uniformly owns a leading '/', which keeps the splice math linear
// and correct in both directions. Rootless and noscheme paths (no
// authority, first segment unprefixed) are still fully supported for
// read access (Count, EncodedAt, At, EncodedAll).
type SegmentsView struct {
	u *Url
}

// Segments returns a SegmentsView over u's current path.
func (u *Url) Segments() SegmentsView {
	return SegmentsView{u: u}
}

type segBound struct {
	sepLen               int
	contentStart, contentEnd int
}

func (u *Url) segmentBounds() []segBound {
	region := u.buf.region(IDPath)
	n := len(region)
	if n == 0 {
		return nil
	}

	var bounds []segBound
	i := 0
	for i < n {
		sepLen := 0
		if region[i] == '/' {
			sepLen = 1
			i++
		}

		start := i
		for i < n && region[i] != '/' {
			i++
		}

		bounds = append(bounds, segBound{sepLen: sepLen, contentStart: start, contentEnd: i})
	}

	return bounds
}

// Count returns the number of segments in the current path (spec.md
// P4), identical to Url.NSegments.
func (v SegmentsView) Count() int {
	return v.u.buf.parts.NSeg
}

// EncodedAt returns the still-percent-encoded content of the i-th
// segment (0-based), excluding its separating '/'.
func (v SegmentsView) EncodedAt(i int) ([]byte, error) {
	bounds := v.u.segmentBounds()
	if i < 0 || i >= len(bounds) {
		return nil, invalidPartf("SegmentsView.EncodedAt", ErrInvalidPath, "index %d out of range [0,%d)", i, len(bounds))
	}

	region := v.u.buf.region(IDPath)

	return region[bounds[i].contentStart:bounds[i].contentEnd], nil
}

// At decodes EncodedAt.
func (v SegmentsView) At(i int) ([]byte, error) {
	encoded, err := v.EncodedAt(i)
	if err != nil {
		return nil, err
	}

	return pcharCodec.Decode(encoded)
}

// EncodedAll returns the still-percent-encoded content of every
// segment, in order.
func (v SegmentsView) EncodedAll() [][]byte {
	bounds := v.u.segmentBounds()
	region := v.u.buf.region(IDPath)
	out := make([][]byte, len(bounds))
	for i, b := range bounds {
		out[i] = region[b.contentStart:b.contentEnd]
	}

	return out
}

func (v SegmentsView) requireAbemptyOrEmpty() error {
	path := v.u.EncodedPath()
	if len(path) == 0 || path[0] == '/' {
		return nil
	}

	return invalidPartf("SegmentsView", ErrInvalidPath,
		"segment mutation requires an abempty or absolute path, got %q", path)
}

// InsertEncoded inserts a new segment holding the already-encoded
// content at logical position i (0 <= i <= Count()), shifting
// subsequent segments right.
func (v SegmentsView) InsertEncoded(i int, content []byte) error {
	if err := v.requireAbemptyOrEmpty(); err != nil {
		return err
	}
	if err := ValidateSegment(content); err != nil {
		return err
	}

	bounds := v.u.segmentBounds()
	if i < 0 || i > len(bounds) {
		return invalidPartf("SegmentsView.InsertEncoded", ErrInvalidPath, "index %d out of range [0,%d]", i, len(bounds))
	}

	base := v.u.buf.parts.Offset[IDPath]
	var absOff int
	if i < len(bounds) {
		absOff = base + bounds[i].contentStart - 1
	} else {
		absOff = base + v.u.buf.parts.Length(IDPath)
	}

	newTokens := make([]byte, 1+len(content))
	newTokens[0] = '/'
	copy(newTokens[1:], content)

	return v.u.buf.spliceTokens(IDPath, absOff, 0, newTokens, 1)
}

// Insert percent-encodes content against PChar and inserts it.
func (v SegmentsView) Insert(i int, content string) error {
	src := []byte(content)
	dst := make([]byte, pcharCodec.EncodedSize(src))
	pcharCodec.Encode(dst, src)

	return v.InsertEncoded(i, dst)
}

// Erase removes the i-th segment (including its separating '/').
func (v SegmentsView) Erase(i int) error {
	if err := v.requireAbemptyOrEmpty(); err != nil {
		return err
	}

	bounds := v.u.segmentBounds()
	if i < 0 || i >= len(bounds) {
		return invalidPartf("SegmentsView.Erase", ErrInvalidPath, "index %d out of range [0,%d)", i, len(bounds))
	}

	base := v.u.buf.parts.Offset[IDPath]
	absOff := base + bounds[i].contentStart - 1
	oldLen := bounds[i].contentEnd - (bounds[i].contentStart - 1)

	return v.u.buf.spliceTokens(IDPath, absOff, oldLen, nil, -1)
}

// ReplaceEncoded replaces the i-th segment's content (not its
// separating '/') with the already-encoded content.
func (v SegmentsView) ReplaceEncoded(i int, content []byte) error {
	if err := v.requireAbemptyOrEmpty(); err != nil {
		return err
	}
	if err := ValidateSegment(content); err != nil {
		return err
	}

	bounds := v.u.segmentBounds()
	if i < 0 || i >= len(bounds) {
		return invalidPartf("SegmentsView.ReplaceEncoded", ErrInvalidPath, "index %d out of range [0,%d)", i, len(bounds))
	}

	base := v.u.buf.parts.Offset[IDPath]
	absOff := base + bounds[i].contentStart
	oldLen := bounds[i].contentEnd - bounds[i].contentStart

	return v.u.buf.spliceTokens(IDPath, absOff, oldLen, content, 0)
}

// Replace percent-encodes content against PChar and replaces the i-th
// segment's content with it.
func (v SegmentsView) Replace(i int, content string) error {
	src := []byte(content)
	dst := make([]byte, pcharCodec.EncodedSize(src))
	pcharCodec.Encode(dst, src)

	return v.ReplaceEncoded(i, dst)
}

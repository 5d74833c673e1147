// Package urlbuf implements RFC 3986 URI parsing and in-place
// mutation over a single contiguous, percent-encoded byte buffer plus
// an offset table describing where each component lives within it.
//
// Every Url is backed by a UrlBuffer: the whole encoded URL is always
// exactly the buffer's bytes end to end, with each component region
// owning its own delimiters (a trailing ':' for scheme, a leading
// "//" for the authority marker, and so on). Component setters and
// the SegmentsView/ParamsView iterators are all built on top of one
// generic primitive, UrlBuffer.ResizeRange, which reshapes a
// half-open range of the buffer and repairs every downstream offset
// in a single O(L) pass.
//
// Normalization beyond scheme lower-casing (such as rewriting
// percent-escapes or removing dot-segments), Unicode/IDNA host
// normalization, and full reference resolution against a base URI are
// out of scope; see DESIGN.md for the reasoning behind that boundary.
// The decoding getters (User, Host, Path, ...) return decoded copies
// and leave the stored encoded bytes untouched.
package urlbuf

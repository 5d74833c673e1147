package urlbuf

import "bytes"

var (
	queryCodec    = NewPercentCodec(Query)
	fragmentCodec = NewPercentCodec(Fragment)
)

// ValidateQuery recognizes "query = *( pchar / '/' / '?' )" against the
// already-isolated encoded query substring (no leading '?').
func ValidateQuery(data []byte) error {
	return queryCodec.Validate(data)
}

// ValidateFragment recognizes the fragment production, identical in
// shape to query.
func ValidateFragment(data []byte) error {
	return fragmentCodec.Validate(data)
}

// CountParams implements spec.md P5: 0 if the query is absent (nil,
// i.e. no '?' at all), else 1 + the number of '&' bytes in the query
// region. A present-but-empty query ("?" with nothing after it) is a
// non-empty region and counts as a single, empty parameter — callers
// distinguish "absent" from "present but empty" the same way
// Url.EncodedQuery does, via nil vs. a non-nil empty slice.
func CountParams(queryRegion []byte) int {
	if queryRegion == nil {
		return 0
	}

	return 1 + bytes.Count(queryRegion, []byte{'&'})
}

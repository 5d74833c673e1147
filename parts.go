package urlbuf

// ComponentID enumerates the components of a URI in left-to-right order,
// per spec.md §3. It doubles as an index into Parts.Offset.
type ComponentID int

const (
	IDScheme ComponentID = iota
	IDUser
	IDPassword
	IDHost
	IDPort
	IDPath
	IDQuery
	IDFragment
	IDEnd
)

func (id ComponentID) String() string {
	switch id {
	case IDScheme:
		return "scheme"
	case IDUser:
		return "user"
	case IDPassword:
		return "password"
	case IDHost:
		return "host"
	case IDPort:
		return "port"
	case IDPath:
		return "path"
	case IDQuery:
		return "query"
	case IDFragment:
		return "fragment"
	case IDEnd:
		return "end"
	default:
		return "unknown"
	}
}

// HostType classifies the most recently parsed host region.
type HostType uint8

const (
	HostNone HostType = iota
	HostName
	HostIPv4
	HostIPv6
	HostIPvFuture
)

func (h HostType) String() string {
	switch h {
	case HostNone:
		return "none"
	case HostName:
		return "name"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostIPvFuture:
		return "ipv_future"
	default:
		return "unknown"
	}
}

// Parts is the offset table for a UrlBuffer: one entry per ComponentID,
// weakly increasing, with Offset[IDScheme] == 0 and Offset[IDEnd] == the
// buffer's logical length. NSeg and NParam cache the structural counts
// of the path and query regions (spec.md §3, invariant 10); HostType
// records how the host region was last classified.
type Parts struct {
	Offset   [IDEnd + 1]int
	NSeg     int
	NParam   int
	HostType HostType
}

// Length returns the byte length of region id: Offset[id+1] - Offset[id].
func (p *Parts) Length(id ComponentID) int {
	return p.Offset[id+1] - p.Offset[id]
}

// LengthRange returns the byte length of the half-open range [first, last).
func (p *Parts) LengthRange(first, last ComponentID) int {
	return p.Offset[last] - p.Offset[first]
}

// HasAuthority reports whether the URL currently carries an authority
// region, i.e. a leading "//" before the path.
func (p *Parts) HasAuthority() bool {
	return p.LengthRange(IDUser, IDPath) > 0
}

package urlbuf

// Named CharSets required by RFC 3986, assembled by union the way the
// teacher's decode.go builds unreservedAndSubDelimsCharSet / pcharCharSet /
// userInfoCharSet / queryOrFragmentCharSet at init time, generalized here to
// the full table spec.md §4.1 names.
var (
	Digit      CharSet
	Alpha      CharSet
	AlphaDigit CharSet
	SchemeChar CharSet

	Unreserved CharSet
	GenDelims  CharSet
	SubDelims  CharSet
	PChar      CharSet
	RegName    CharSet
	UserInfoNC CharSet
	UserInfo   CharSet
	Query      CharSet
	Fragment   CharSet
	QKey       CharSet
	QVal       CharSet
)

func init() {
	Digit = charSetFromFunc(func(b byte) bool { return b >= '0' && b <= '9' })
	Alpha = charSetFromFunc(func(b byte) bool {
		return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
	})
	AlphaDigit = Alpha.Union(Digit)
	SchemeChar = AlphaDigit.Union(charSetFromBytes('+', '-', '.'))

	Unreserved = AlphaDigit.Union(charSetFromBytes('-', '.', '_', '~'))
	GenDelims = charSetFromBytes(':', '/', '?', '#', '[', ']', '@')
	SubDelims = charSetFromBytes('!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=')

	PChar = Unreserved.Union(SubDelims).Union(charSetFromBytes(':', '@'))
	RegName = Unreserved.Union(SubDelims)
	UserInfoNC = Unreserved.Union(SubDelims)
	UserInfo = UserInfoNC.Union(charSetFromBytes(':'))

	Query = PChar.Union(charSetFromBytes('/', '?'))
	Fragment = Query

	QKey = Query.Without(charSetFromBytes('=', '&'))
	QVal = Query.Without(charSetFromBytes('&'))
}

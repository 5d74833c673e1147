package urlbuf

import "bytes"

var userInfoNCCodec = NewPercentCodec(UserInfoNC)
var userInfoCodec = NewPercentCodec(UserInfo)

// SplitUserInfo splits the already-isolated userinfo substring (the
// bytes between "//" and the first unescaped '@') into its user and
// password parts, per:
//
//	userinfo = *( userinfo-nc / pct-encoded ) [ ":" *( userinfo / pct-encoded ) ]
//
// The returned slices are encoded (still percent-escaped) and exclude
// the separating ':'. If raw contains no unescaped ':', password is
// nil and user is the whole of raw.
func SplitUserInfo(raw []byte) (user, password []byte, err error) {
	i := bytes.IndexByte(raw, ':')
	if i < 0 {
		if verr := userInfoNCCodec.Validate(raw); verr != nil {
			return nil, nil, invalidPartf("SplitUserInfo", ErrInvalidUserInfo, "invalid user: %v", verr)
		}

		return raw, nil, nil
	}

	user, password = raw[:i], raw[i+1:]
	if verr := userInfoNCCodec.Validate(user); verr != nil {
		return nil, nil, invalidPartf("SplitUserInfo", ErrInvalidUserInfo, "invalid user: %v", verr)
	}
	if verr := userInfoCodec.Validate(password); verr != nil {
		return nil, nil, invalidPartf("SplitUserInfo", ErrInvalidUserInfo, "invalid password: %v", verr)
	}

	return user, password, nil
}

package urlbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o, redeem := applyOptions(nil)
	defer redeem(o)

	require.Equal(t, flagValidateAll, o.validationFlags)
	require.True(t, o.validationFlags&flagValidateHost > 0)
	require.True(t, o.validationFlags&flagValidateFragment > 0)
	require.NotNil(t, o.schemeIsDNSFunc)
}

func TestOptionsOverride(t *testing.T) {
	o, redeem := applyOptions([]Option{withValidationFlags(flagValidatePort)})
	defer redeem(o)

	require.Equal(t, flagValidatePort, o.validationFlags)
}

func TestWithSchemeIsDNSFunc(t *testing.T) {
	custom := func(string) bool { return true }
	o, redeem := applyOptions([]Option{WithSchemeIsDNSFunc(custom)})
	defer redeem(o)

	require.True(t, o.schemeIsDNSFunc("anything"))
}

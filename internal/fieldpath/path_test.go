// internal/fieldpath/path_test.go
package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_String(t *testing.T) {
	testCases := []struct {
		name        string
		path        Path
		expectedStr string
	}{
		{
			name:        "root",
			path:        Root(),
			expectedStr: "",
		},
		{
			name:        "simple path",
			path:        Root().Field("ap").Field("ssid"),
			expectedStr: "ap.ssid",
		},
		{
			name:        "path with index",
			path:        Root().Field("networks").Index(1).Field("manual_ip").Field("gateway"),
			expectedStr: "networks[1].manual_ip.gateway",
		},
		{
			name:        "indexed root",
			path:        Root().Index(0).Field("ssid"),
			expectedStr: "[0].ssid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.path.String())
		})
	}
}

func TestPath_FieldDoesNotAlias(t *testing.T) {
	parent := Root().Field("networks").Index(0)
	a := parent.Field("ssid")
	b := parent.Field("password")

	assert.Equal(t, "networks[0].ssid", a.String())
	assert.Equal(t, "networks[0].password", b.String())
	assert.Equal(t, "networks[0]", parent.String())
}

func TestPath_RoundTrip(t *testing.T) {
	for _, raw := range []string{
		"wifi.ssid",
		"networks[0].manual_ip.dns1",
		"ap.bssid",
	} {
		t.Run(raw, func(t *testing.T) {
			p, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, p.String())

			again, err := Parse(p.String())
			require.NoError(t, err)
			assert.True(t, p.Equal(again))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, raw := range []string{"a..b", "a.b[x]", "a.-.c", "a.[0]", "a b"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
		})
	}
}

func TestPath_Last(t *testing.T) {
	assert.Equal(t, "", Root().Last())
	assert.Equal(t, "gateway", Root().Field("manual_ip").Field("gateway").Last())
	assert.False(t, Root().Field("x").IsRoot())
}

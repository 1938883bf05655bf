package validate_test

import (
	"strings"
	"testing"

	"github.com/specialistvlad/espgen/internal/model"
	"github.com/specialistvlad/espgen/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	t.Parallel()

	// Every length from 0 to 80: valid iff empty or within [8, 63].
	for n := 0; n <= 80; n++ {
		pw := strings.Repeat("x", n)
		_, err := validate.Password(model.String(pw))
		if n == 0 || (n >= 8 && n <= 63) {
			assert.NoError(t, err, "length %d should be accepted", n)
		} else {
			assert.Error(t, err, "length %d should be rejected", n)
		}
	}

	_, err := validate.Password(model.String("short"))
	require.EqualError(t, err, "WPA password must be at least 8 characters long")

	_, err = validate.Password(model.String(strings.Repeat("a", 64)))
	require.EqualError(t, err, "WPA password must be at most 63 characters long")

	// Lengths count characters, not bytes.
	_, err = validate.Password(model.String(strings.Repeat("é", 7)))
	require.EqualError(t, err, "WPA password must be at least 8 characters long")
	_, err = validate.Password(model.String(strings.Repeat("é", 40)))
	require.NoError(t, err)
	_, err = validate.Password(model.String(strings.Repeat("é", 64)))
	require.EqualError(t, err, "WPA password must be at most 63 characters long")
}

func TestChannel(t *testing.T) {
	t.Parallel()

	for c := int64(-3); c <= 20; c++ {
		got, err := validate.Channel(model.Int(c))
		if c >= 1 && c <= 14 {
			require.NoError(t, err, "channel %d", c)
			i, _ := got.AsInt()
			assert.Equal(t, c, i)
		} else {
			assert.Error(t, err, "channel %d", c)
		}
	}

	_, err := validate.Channel(model.Int(0))
	require.EqualError(t, err, "minimum channel is 1")
	_, err = validate.Channel(model.Int(15))
	require.EqualError(t, err, "maximum channel is 14")

	t.Run("coerces numeric strings", func(t *testing.T) {
		got, err := validate.Channel(model.String("6"))
		require.NoError(t, err)
		assert.True(t, got.Equal(model.Int(6)))
	})

	t.Run("rejects non integers", func(t *testing.T) {
		for _, v := range []model.Value{model.Float(6.5), model.String("six"), model.Bool(true), model.List()} {
			_, err := validate.Channel(v)
			assert.Error(t, err, "value %s", v)
		}
	})
}

func TestIPv4(t *testing.T) {
	t.Parallel()

	got, err := validate.IPv4(model.String("192.168.1.254"))
	require.NoError(t, err)
	ip, ok := got.AsIPv4()
	require.True(t, ok)
	assert.Equal(t, [4]byte{192, 168, 1, 254}, ip)

	again, err := validate.IPv4(got)
	require.NoError(t, err, "validating a typed leaf must be idempotent")
	assert.True(t, again.Equal(got))

	for _, bad := range []string{"", "192.168.1", "192.168.1.256", "a.b.c.d", "1.2.3.4.5", "-1.2.3.4"} {
		_, err := validate.IPv4(model.String(bad))
		assert.Error(t, err, "input %q", bad)
	}
}

func TestMACAddress(t *testing.T) {
	t.Parallel()

	got, err := validate.MACAddress(model.String("aa:BB:cc:01:02:03"))
	require.NoError(t, err)
	mac, ok := got.AsMAC()
	require.True(t, ok)
	assert.Equal(t, [6]byte{0xAA, 0xBB, 0xCC, 0x01, 0x02, 0x03}, mac)

	_, err = validate.MACAddress(got)
	require.NoError(t, err)

	for _, bad := range []string{"", "AA:BB:CC:DD:EE", "AA:BB:CC:DD:EE:GG", "AAA:BB:CC:DD:EE:FF", "AA-BB-CC-DD-EE-FF"} {
		_, err := validate.MACAddress(model.String(bad))
		assert.Error(t, err, "input %q", bad)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		fn    validate.Func
		input model.Value
		ok    bool
	}{
		{"ssid ok", validate.SSID, model.String("home"), true},
		{"ssid empty", validate.SSID, model.String(""), false},
		{"ssid too long", validate.SSID, model.String(strings.Repeat("s", 32)), false},
		{"ssid from int", validate.SSID, model.Int(1234), true},
		{"ssid multibyte at limit", validate.SSID, model.String(strings.Repeat("é", 31)), true},
		{"ssid multibyte too long", validate.SSID, model.String(strings.Repeat("é", 32)), false},
		{"hostname ok", validate.Hostname, model.String("living-room"), true},
		{"hostname underscore", validate.Hostname, model.String("living_room"), false},
		{"hostname too long", validate.Hostname, model.String(strings.Repeat("h", 64)), false},
		{"hostname leading and trailing hyphen", validate.Hostname, model.String("-node-"), true},
		{"hostname dot", validate.Hostname, model.String("node.local"), false},
		{"domain ok", validate.DomainName, model.String(".local"), true},
		{"domain missing dot", validate.DomainName, model.String("local"), false},
		{"domain double dot", validate.DomainName, model.String("..local"), false},
		{"domain labels not checked as hostnames", validate.DomainName, model.String(".-lab_1..x"), true},
		{"domain at limit", validate.DomainName, model.String("." + strings.Repeat("d", 252)), true},
		{"domain too long", validate.DomainName, model.String("." + strings.Repeat("d", 253)), false},
		{"identifier ok", validate.Identifier, model.String("wifi_2"), true},
		{"identifier digit start", validate.Identifier, model.String("2wifi"), false},
		{"identifier reserved", validate.Identifier, model.String("class"), false},
		{"string rejects list", validate.String, model.List(), false},
		{"string rejects null", validate.String, model.Null(), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn(tc.input)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestEnsureList(t *testing.T) {
	t.Parallel()

	single := model.Map(model.E("ssid", model.String("a")))
	got, err := validate.EnsureList(single)
	require.NoError(t, err)
	require.Equal(t, model.KindList, got.Kind())
	assert.Equal(t, 1, got.Len())

	got, err = validate.EnsureList(model.Null())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestChainAndInvalid(t *testing.T) {
	t.Parallel()

	fn := validate.Chain(validate.String, validate.StringLength(2, 4))
	_, err := fn(model.String("abc"))
	require.NoError(t, err)
	_, err = fn(model.String("abcde"))
	require.EqualError(t, err, "length of value must be at most 4")

	_, err = validate.Invalid("gone")(model.String("x"))
	require.EqualError(t, err, "gone")

	got, err := validate.IntRange(1, 3)(model.Float(2))
	require.NoError(t, err)
	assert.True(t, got.Equal(model.Int(2)))

	b, err := validate.Boolean(model.String("on"))
	require.NoError(t, err)
	assert.True(t, b.Equal(model.Bool(true)))
}

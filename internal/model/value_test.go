package model_test

import (
	"testing"

	"github.com/specialistvlad/espgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_MapKeepsOrder(t *testing.T) {
	t.Parallel()

	v := model.Map(
		model.E("ssid", model.String("home")),
		model.E("password", model.String("secret123")),
		model.E("channel", model.Int(6)),
	)

	require.Equal(t, model.KindMap, v.Kind())
	assert.Equal(t, []string{"ssid", "password", "channel"}, v.Keys())

	updated := v.Set("ssid", model.String("office"))
	assert.Equal(t, []string{"ssid", "password", "channel"}, updated.Keys())
	assert.Equal(t, "office", updated.GetString("ssid", ""))
	assert.Equal(t, "home", v.GetString("ssid", ""), "Set must not mutate the receiver")

	appended := v.Set("bssid", model.Null())
	assert.Equal(t, []string{"ssid", "password", "channel", "bssid"}, appended.Keys())
	assert.Equal(t, 3, v.Len())
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	ip := model.IPv4([4]byte{192, 168, 1, 1})
	got, ok := ip.AsIPv4()
	require.True(t, ok)
	assert.Equal(t, [4]byte{192, 168, 1, 1}, got)
	assert.Equal(t, "192.168.1.1", ip.String())

	mac := model.MAC([6]byte{0xAA, 0xBB, 0xCC, 0x01, 0x02, 0x03})
	assert.Equal(t, "AA:BB:CC:01:02:03", mac.String())

	_, ok = model.String("x").AsInt()
	assert.False(t, ok)

	assert.True(t, model.Value{}.IsNull())
	assert.True(t, model.KindIPv4.IsScalar())
	assert.False(t, model.KindList.IsScalar())
}

func TestValue_EqualIgnoresPositions(t *testing.T) {
	t.Parallel()

	a := model.List(model.String("a"), model.Int(1)).WithPos(model.Pos{File: "a.yaml", Line: 1, Column: 1})
	b := model.List(model.String("a"), model.Int(1))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(model.List(model.String("a"))))
	assert.False(t, model.Int(1).Equal(model.Float(1)))
}

func TestValue_Interface(t *testing.T) {
	t.Parallel()

	v := model.Map(
		model.E("networks", model.List(model.Map(model.E("ssid", model.String("net1"))))),
		model.E("gateway", model.IPv4([4]byte{10, 0, 0, 1})),
	)
	want := map[string]any{
		"networks": []any{map[string]any{"ssid": "net1"}},
		"gateway":  "10.0.0.1",
	}
	assert.Equal(t, want, v.Interface())
}

func TestPos_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "wifi.yaml:3:5", model.Pos{File: "wifi.yaml", Line: 3, Column: 5}.String())
	assert.False(t, model.Pos{}.IsValid())
}

package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/fieldpath"
	"github.com/specialistvlad/espgen/internal/model"
	"github.com/specialistvlad/espgen/internal/schema"
	"github.com/specialistvlad/espgen/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manualIPBase = schema.New(
	schema.Required("static_ip", schema.IPv4),
	schema.Required("gateway", schema.IPv4),
	schema.Required("subnet", schema.IPv4),
)

var manualIPExtended = manualIPBase.Extend(
	schema.Inclusive("dns1", "dns", schema.IPv4),
	schema.Inclusive("dns2", "dns", schema.IPv4),
)

func manualIP(extra ...model.Entry) model.Value {
	entries := []model.Entry{
		model.E("static_ip", model.String("192.168.1.10")),
		model.E("gateway", model.String("192.168.1.1")),
		model.E("subnet", model.String("255.255.255.0")),
	}
	return model.Map(append(entries, extra...)...)
}

func TestSchema_Extend(t *testing.T) {
	t.Parallel()

	t.Run("adds fields without touching the base", func(t *testing.T) {
		names := func(s schema.Schema) []string {
			var out []string
			for _, f := range s.Fields() {
				out = append(out, f.Name)
			}
			return out
		}
		assert.Equal(t, []string{"static_ip", "gateway", "subnet"}, names(manualIPBase))
		assert.Equal(t, []string{"static_ip", "gateway", "subnet", "dns1", "dns2"}, names(manualIPExtended))
	})

	t.Run("overrides fields in place", func(t *testing.T) {
		base := schema.New(
			schema.Optional("a", schema.String),
			schema.Optional("b", schema.String),
		)
		derived := base.Extend(schema.Required("a", schema.Channel))
		f, ok := derived.Field("a")
		require.True(t, ok)
		assert.Equal(t, schema.PresenceRequired, f.Presence)
		assert.Equal(t, "a", derived.Fields()[0].Name)

		_, err := derived.Validate(model.Map(model.E("a", model.Int(20))), fieldpath.Root())
		require.Error(t, err)
		_, err = base.Validate(model.Map(model.E("a", model.Int(20))), fieldpath.Root())
		require.NoError(t, err)
	})

	t.Run("base rejects extension keys", func(t *testing.T) {
		_, err := manualIPBase.Validate(manualIP(model.E("dns1", model.String("1.1.1.1"))), fieldpath.Root())
		var fieldErr *diag.FieldValidationError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "dns1", fieldErr.Path.String())
	})
}

func TestSchema_Validate(t *testing.T) {
	t.Parallel()

	t.Run("converts leaves to typed values", func(t *testing.T) {
		out, err := manualIPBase.Validate(manualIP(), fieldpath.Root())
		require.NoError(t, err)
		gw, _ := out.Get("gateway")
		ip, ok := gw.AsIPv4()
		require.True(t, ok)
		assert.Equal(t, [4]byte{192, 168, 1, 1}, ip)
	})

	t.Run("revalidation is idempotent", func(t *testing.T) {
		out, err := manualIPExtended.Validate(manualIP(model.E("dns1", model.String("8.8.8.8"))), fieldpath.Root())
		require.NoError(t, err)
		again, err := manualIPExtended.Validate(out, fieldpath.Root())
		require.NoError(t, err)
		assert.True(t, out.Equal(again))
	})

	t.Run("collects every field error with its path", func(t *testing.T) {
		in := model.Map(
			model.E("static_ip", model.String("300.1.1.1")),
			model.E("subnet", model.String("255.255.255.0")),
			model.E("bogus", model.Int(1)),
		)
		_, err := manualIPBase.Validate(in, fieldpath.Root().Field("manual_ip"))
		var list diag.List
		require.ErrorAs(t, err, &list)
		require.Len(t, list, 3)

		var paths []string
		for _, e := range list {
			loc, ok := diag.LocationOf(e)
			require.True(t, ok)
			paths = append(paths, loc.Path.String())
		}
		assert.ElementsMatch(t, []string{"manual_ip.static_ip", "manual_ip.bogus", "manual_ip.gateway"}, paths)
	})

	t.Run("rejects non mappings with a shape error", func(t *testing.T) {
		_, err := manualIPBase.Validate(model.String("dhcp"), fieldpath.Root())
		var shapeErr *diag.SchemaShapeError
		require.ErrorAs(t, err, &shapeErr)
	})

	t.Run("materializes defaults", func(t *testing.T) {
		s := schema.New(schema.OptionalDefault("domain", schema.DomainName, model.String(".local")))
		out, err := s.Validate(model.Map(), fieldpath.Root())
		require.NoError(t, err)
		assert.Equal(t, ".local", out.GetString("domain", ""))
	})
}

// Inclusive members are validated when present but do not require each
// other: dns1 alone is accepted.
func TestSchema_InclusiveGroupIsNotMutuallyRequired(t *testing.T) {
	t.Parallel()

	out, err := manualIPExtended.Validate(manualIP(model.E("dns1", model.String("1.1.1.1"))), fieldpath.Root())
	require.NoError(t, err)
	assert.True(t, out.Has("dns1"))
	assert.False(t, out.Has("dns2"))

	_, err = manualIPExtended.Validate(manualIP(model.E("dns2", model.String("not-an-ip"))), fieldpath.Root())
	require.Error(t, err)
}

func TestRequireAtLeastOneOf(t *testing.T) {
	t.Parallel()

	network := schema.All(
		schema.New(
			schema.Optional("ssid", schema.SSID),
			schema.Optional("bssid", schema.MACAddress),
			schema.Optional("channel", schema.Channel),
		),
		schema.RequireAtLeastOneOf("ssid", "bssid"),
	)

	for _, in := range []model.Value{
		model.Map(),
		model.Map(model.E("channel", model.Int(3))),
	} {
		_, err := network.Validate(in, fieldpath.Root().Field("ap"))
		var shapeErr *diag.SchemaShapeError
		require.ErrorAs(t, err, &shapeErr, "input %s", in)
		assert.Equal(t, "ap", shapeErr.Path.String())
	}

	_, err := network.Validate(model.Map(model.E("bssid", model.String("AA:BB:CC:DD:EE:FF"))), fieldpath.Root())
	require.NoError(t, err)

	t.Run("field errors win over the post check", func(t *testing.T) {
		_, err := network.Validate(model.Map(model.E("channel", model.Int(99))), fieldpath.Root())
		var fieldErr *diag.FieldValidationError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "maximum channel is 14", fieldErr.Message)
	})
}

func TestOneOf_ReportsFirstAlternative(t *testing.T) {
	t.Parallel()

	v := schema.OneOf(schema.Channel, schema.IPv4)

	out, err := v.Validate(model.String("10.0.0.1"), fieldpath.Root())
	require.NoError(t, err)
	assert.Equal(t, model.KindIPv4, out.Kind())

	_, err = v.Validate(model.String("nope"), fieldpath.Root().Field("x"))
	var shapeErr *diag.SchemaShapeError
	require.ErrorAs(t, err, &shapeErr)
	var cause *diag.FieldValidationError
	require.ErrorAs(t, shapeErr.Cause, &cause)
	assert.Contains(t, cause.Message, "expected integer")
}

func TestListOf(t *testing.T) {
	t.Parallel()

	v := schema.Chain(schema.Prim(validate.EnsureList), schema.ListOf(schema.Channel))

	out, err := v.Validate(model.Int(3), fieldpath.Root().Field("channels"))
	require.NoError(t, err)
	assert.True(t, out.Equal(model.List(model.Int(3))))

	_, err = v.Validate(model.List(model.Int(1), model.Int(0), model.Int(20)), fieldpath.Root().Field("channels"))
	var list diag.List
	require.ErrorAs(t, err, &list)
	require.Len(t, list, 2)
	loc, _ := diag.LocationOf(list[0])
	assert.Equal(t, "channels[1]", loc.Path.String())
	loc, _ = diag.LocationOf(list[1])
	assert.Equal(t, "channels[2]", loc.Path.String())
}

func TestRemoved(t *testing.T) {
	t.Parallel()

	s := schema.New(schema.Optional("manual_ip", schema.Removed("1.7.0", "moved to networks")))
	_, err := s.Validate(model.Map(model.E("manual_ip", model.Map())), fieldpath.Root())
	var crossErr *diag.CrossFieldError
	require.ErrorAs(t, err, &crossErr)
	assert.Equal(t, "manual_ip", crossErr.Path.String())
	assert.Equal(t, "moved to networks since 1.7.0", crossErr.Message)

	_, err = s.Validate(model.Map(), fieldpath.Root())
	require.NoError(t, err)

	assert.Panics(t, func() { schema.Removed("not-a-version", "x") })
}

func TestNew_PanicsOnDuplicateField(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		schema.New(schema.Optional("a", schema.String), schema.Required("a", schema.String))
	})
}

func TestCheckFunc(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("custom failure")
	v := schema.All(schema.New(schema.Optional("a", schema.String)), schema.CheckFunc(func(v model.Value, path fieldpath.Path) error {
		if v.Has("a") {
			return sentinel
		}
		return nil
	}))
	_, err := v.Validate(model.Map(model.E("a", model.String("x"))), fieldpath.Root())
	var fieldErr *diag.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "custom failure", fieldErr.Message)
}

func TestJSONSchema(t *testing.T) {
	t.Parallel()

	network := schema.All(
		schema.New(
			schema.Optional("ssid", schema.SSID).Describe("Network name."),
			schema.Optional("bssid", schema.MACAddress),
			schema.Optional("manual_ip", manualIPExtended),
			schema.OptionalDefault("domain", schema.DomainName, model.String(".local")),
		),
		schema.RequireAtLeastOneOf("ssid", "bssid"),
	)

	raw, err := json.Marshal(schema.JSONSchema(network))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Len(t, doc["anyOf"], 2)

	props := doc["properties"].(map[string]any)
	ssid := props["ssid"].(map[string]any)
	assert.Equal(t, "Network name.", ssid["description"])
	assert.EqualValues(t, 31, ssid["maxLength"])

	domain := props["domain"].(map[string]any)
	assert.Equal(t, ".local", domain["default"])

	mip := props["manual_ip"].(map[string]any)
	assert.ElementsMatch(t, []any{"static_ip", "gateway", "subnet"}, mip["required"])
}

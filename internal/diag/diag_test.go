package diag_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/fieldpath"
	"github.com/specialistvlad/espgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pos = model.Pos{File: "device.yaml", Line: 4, Column: 7, Byte: 40}

func TestErrors_Message(t *testing.T) {
	t.Parallel()

	apPath := fieldpath.Root().Field("ap").Field("manual_ip").Field("dns1")
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "field error at root",
			err:  diag.NewField(fieldpath.Root(), pos, "component not found"),
			want: "component not found",
		},
		{
			name: "field error with component",
			err:  diag.WithComponent(diag.NewField(apPath, pos, "extra keys not allowed"), "wifi"),
			want: "wifi.ap.manual_ip.dns1: extra keys not allowed",
		},
		{
			name: "shape error with cause",
			err:  diag.NewShape(fieldpath.Root().Field("networks").Index(0), pos, errors.New("expected a mapping"), "invalid network"),
			want: "networks[0]: invalid network: expected a mapping",
		},
		{
			name: "identifier conflict",
			err: &diag.IdentifierConflictError{
				Name:   "wifi",
				Kind:   diag.ErrDuplicateIdentifier,
				Detail: "already declared as esphomelib::WiFiComponent by wifi.id",
			},
			want: `duplicate identifier "wifi": already declared as esphomelib::WiFiComponent by wifi.id`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	t.Run("stamps every error of a list", func(t *testing.T) {
		t.Parallel()
		list := diag.List{
			diag.NewField(fieldpath.Root().Field("ssid"), pos, "bad"),
			diag.NewCrossField(fieldpath.Root().Field("password"), pos, "worse"),
		}
		diag.WithComponent(list, "wifi")
		for _, err := range list {
			loc, ok := diag.LocationOf(err)
			require.True(t, ok)
			assert.Equal(t, "wifi", loc.Component)
		}
	})

	t.Run("keeps an existing component", func(t *testing.T) {
		t.Parallel()
		err := diag.WithComponent(diag.NewField(fieldpath.Root(), pos, "bad"), "ota")
		diag.WithComponent(err, "wifi")
		loc, _ := diag.LocationOf(err)
		assert.Equal(t, "ota", loc.Component)
	})

	t.Run("reaches wrapped errors", func(t *testing.T) {
		t.Parallel()
		inner := diag.NewField(fieldpath.Root(), pos, "bad")
		diag.WithComponent(fmt.Errorf("context: %w", inner), "wifi")
		assert.Equal(t, "wifi", inner.Component)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, diag.WithComponent(nil, "wifi"))
	})

	t.Run("foreign errors are not located", func(t *testing.T) {
		t.Parallel()
		_, ok := diag.LocationOf(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	var list diag.List
	assert.NoError(t, list.ErrOrNil())

	first := diag.NewField(fieldpath.Root().Field("ssid"), pos, "first")
	second := &diag.IdentifierConflictError{Name: "net", Kind: diag.ErrUndeclaredIdentifier}
	list = list.Append(nil).Append(first).Append(diag.List{second, diag.List{}})

	require.Len(t, list, 2, "nested lists are flattened")
	err := list.ErrOrNil()
	require.Error(t, err)
	assert.ErrorIs(t, err, diag.ErrUndeclaredIdentifier)

	var conflict *diag.IdentifierConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "net", conflict.Name)

	assert.Equal(t, "multiple errors:\n- ssid: first\n- undeclared identifier \"net\"", err.Error())
	assert.Equal(t, "ssid: first", diag.List{first}.Error())
}

func TestToDiagnostics(t *testing.T) {
	t.Parallel()

	t.Run("located errors carry a subject", func(t *testing.T) {
		t.Parallel()
		err := diag.WithComponent(diag.NewCrossField(fieldpath.Root().Field("ssid"), pos, "conflict"), "wifi")

		diags := diag.ToDiagnostics(diag.List{err})
		require.Len(t, diags, 1)
		d := diags[0]
		assert.Equal(t, hcl.DiagError, d.Severity)
		assert.Equal(t, `Conflicting configuration in "wifi"`, d.Summary)
		assert.Equal(t, "wifi.ssid: conflict", d.Detail)
		require.NotNil(t, d.Subject)
		assert.Equal(t, "device.yaml", d.Subject.Filename)
		assert.Equal(t, hcl.Pos{Line: 4, Column: 7, Byte: 40}, d.Subject.Start)
		assert.Equal(t, hcl.Pos{Line: 4, Column: 8, Byte: 41}, d.Subject.End)
	})

	t.Run("unknown position has no subject", func(t *testing.T) {
		t.Parallel()
		diags := diag.ToDiagnostics(&diag.IdentifierConflictError{Name: "net", Kind: diag.ErrUndeclaredIdentifier})
		require.Len(t, diags, 1)
		assert.Equal(t, "Identifier conflict", diags[0].Summary)
		assert.Nil(t, diags[0].Subject)
	})

	t.Run("parse diagnostics pass through", func(t *testing.T) {
		t.Parallel()
		parsed := hcl.Diagnostics{{Severity: hcl.DiagError, Summary: "Argument or block definition required"}}
		diags := diag.ToDiagnostics(fmt.Errorf("failed to parse HCL file device.hcl: %w", parsed))
		assert.Equal(t, parsed, diags)
	})

	t.Run("foreign errors", func(t *testing.T) {
		t.Parallel()
		diags := diag.ToDiagnostics(errors.New("disk full"))
		require.Len(t, diags, 1)
		assert.Equal(t, "Compilation failed", diags[0].Summary)
		assert.Equal(t, "disk full", diags[0].Detail)
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, diag.ToDiagnostics(nil))
	})
}

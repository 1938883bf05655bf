package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/espgen/internal/cppgen"
	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/emit"
	"github.com/stretchr/testify/require"
)

// AssertStatements compares the rendered statements of prog with want.
func AssertStatements(t *testing.T, prog *emit.Program, want ...string) {
	t.Helper()

	got := make([]string, 0, prog.Len())
	for _, s := range prog.Statements() {
		got = append(got, cppgen.Statement(s))
	}
	if want == nil {
		want = []string{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statements mismatch (-want +got):\n%s", diff)
	}
}

// RequireDiag finds the first error of type T in err and checks its
// component and path.
func RequireDiag[T diag.Located](t *testing.T, err error, component, path string) T {
	t.Helper()

	var target T
	require.ErrorAs(t, err, &target)
	loc, ok := diag.LocationOf(target)
	require.True(t, ok)
	require.Equal(t, component, loc.Component, "component of %v", target)
	require.Equal(t, path, loc.Path.String(), "path of %v", target)
	return target
}

package emit_test

import (
	"testing"

	"github.com/specialistvlad/espgen/internal/emit"
	"github.com/specialistvlad/espgen/internal/expr"
	"github.com/specialistvlad/espgen/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wifi = registry.Identifier{
	Name: "wifi",
	Type: expr.Namespace("esphomelib").Class("WiFiComponent"),
	Site: "wifi.id",
}

func TestEmitter_FlushKeepsOrder(t *testing.T) {
	t.Parallel()

	prog := emit.NewProgram()
	e := prog.Emitter("wifi")
	e.DeclareAndBind(wifi, expr.BuildCall(expr.Symbol{Name: "App"}, "init_wifi"))
	e.Invoke(wifi, "add_sta", expr.String("net1"))
	e.Invoke(wifi, "set_hostname", expr.String("node"))

	assert.Equal(t, 0, prog.Len(), "nothing is visible before flush")
	require.Len(t, e.Pending(), 3)

	e.Flush()
	stmts := prog.Statements()
	require.Len(t, stmts, 3)
	assert.Equal(t, emit.KindDeclare, stmts[0].Kind)
	assert.Equal(t, "esphomelib::WiFiComponent wifi = App.init_wifi()", stmts[0].String())
	assert.Equal(t, `wifi.add_sta("net1")`, stmts[1].String())
	assert.Equal(t, `wifi.set_hostname("node")`, stmts[2].String())
	for _, s := range stmts {
		assert.Equal(t, "wifi", s.Component)
	}

	call, ok := stmts[1].Call()
	require.True(t, ok)
	assert.Equal(t, "add_sta", call.Method)
	_, ok = stmts[0].Call()
	assert.False(t, ok)
}

func TestEmitter_DiscardLeavesProgramUntouched(t *testing.T) {
	t.Parallel()

	prog := emit.NewProgram()
	ok := prog.Emitter("logger")
	ok.Invoke(wifi, "noop")
	ok.Flush()

	failed := prog.Emitter("wifi")
	failed.DeclareAndBind(wifi, expr.BuildCall(expr.Symbol{Name: "App"}, "init_wifi"))
	failed.Discard()

	assert.Equal(t, 1, prog.Len())
	assert.Empty(t, prog.ForComponent("wifi"))
	assert.Len(t, prog.ForComponent("logger"), 1)
	assert.Panics(t, func() { failed.Invoke(wifi, "add_sta") })
	assert.Panics(t, func() { ok.Flush() })
}

func TestStatement_References(t *testing.T) {
	t.Parallel()

	other := registry.Identifier{Name: "ota", Type: expr.Namespace("esphomelib").Class("OTAComponent")}
	prog := emit.NewProgram()
	e := prog.Emitter("ota")
	decl := e.DeclareAndBind(other, expr.BuildCall(expr.Symbol{Name: "App"}, "init_ota", wifi.Ref(), other.Ref()))
	assert.Equal(t, []string{"wifi"}, decl.References())

	inv := e.Invoke(other, "set_port", expr.Int(3232))
	assert.Equal(t, []string{"ota"}, inv.References())
}

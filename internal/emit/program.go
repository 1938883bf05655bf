package emit

import (
	"fmt"

	"github.com/specialistvlad/espgen/internal/expr"
	"github.com/specialistvlad/espgen/internal/registry"
)

// Program is the ordered statement list of one run.
type Program struct {
	statements []Statement
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{}
}

// Statements returns a copy of all statements in order.
func (p *Program) Statements() []Statement {
	cp := make([]Statement, len(p.statements))
	copy(cp, p.statements)
	return cp
}

// Len returns the number of statements.
func (p *Program) Len() int {
	return len(p.statements)
}

// ForComponent returns the statements emitted by one component in order.
func (p *Program) ForComponent(component string) []Statement {
	var out []Statement
	for _, s := range p.statements {
		if s.Component == component {
			out = append(out, s)
		}
	}
	return out
}

// Emitter opens a statement buffer for component.
func (p *Program) Emitter(component string) *Emitter {
	return &Emitter{component: component, program: p}
}

// Emitter buffers the statements of one component.
type Emitter struct {
	component string
	program   *Program
	pending   []Statement
	done      bool
}

// DeclareAndBind records the construction of id from ctor.
func (e *Emitter) DeclareAndBind(id registry.Identifier, ctor expr.Expression) Statement {
	return e.record(Statement{
		Kind:       KindDeclare,
		Identifier: id,
		Expression: ctor,
		Component:  e.component,
	})
}

// Invoke records a call of method on id.
func (e *Emitter) Invoke(id registry.Identifier, method string, args ...expr.Expression) Statement {
	return e.record(Statement{
		Kind:       KindInvoke,
		Identifier: id,
		Expression: expr.BuildCall(id.Ref(), method, args...),
		Component:  e.component,
	})
}

// Pending returns the buffered statements.
func (e *Emitter) Pending() []Statement {
	cp := make([]Statement, len(e.pending))
	copy(cp, e.pending)
	return cp
}

// Flush appends the buffered statements to the program.
func (e *Emitter) Flush() {
	e.mustBeOpen()
	e.done = true
	e.program.statements = append(e.program.statements, e.pending...)
	e.pending = nil
}

// Discard drops the buffered statements.
func (e *Emitter) Discard() {
	e.done = true
	e.pending = nil
}

func (e *Emitter) record(s Statement) Statement {
	e.mustBeOpen()
	e.pending = append(e.pending, s)
	return s
}

func (e *Emitter) mustBeOpen() {
	if e.done {
		panic(fmt.Sprintf("emit: emitter for %q used after flush or discard", e.component))
	}
}

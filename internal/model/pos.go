// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Pos, the source location of a value.
//
// Positions connect a value back to the document it was loaded from. They are
// carried through validation untouched so that errors raised deep inside a
// nested schema can still be reported against the original line.
package model

import "fmt"

// Pos is a location inside a source document. Line and Column are 1-based,
// Byte is the 0-based offset of the same point. A zero Line means the
// position is unknown.
type Pos struct {
	File   string
	Line   int
	Column int
	Byte   int
}

// IsValid reports whether the position points somewhere.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// String formats the position as file:line:column.
func (p Pos) String() string {
	if !p.IsValid() {
		return p.File
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

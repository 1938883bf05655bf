// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindMap
	KindList
	KindIPv4
	KindMAC
)

var kindNames = [...]string{
	KindNull:   "null",
	KindString: "string",
	KindInt:    "integer",
	KindFloat:  "float",
	KindBool:   "boolean",
	KindMap:    "mapping",
	KindList:   "list",
	KindIPv4:   "IPv4 address",
	KindMAC:    "MAC address",
}

// String returns the user facing name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsScalar reports whether the kind is a leaf kind.
func (k Kind) IsScalar() bool {
	return k != KindMap && k != KindList
}

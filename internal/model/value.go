// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Value, the node type of a configuration tree, together
// with its constructors and accessors.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is an immutable node of a configuration tree. The zero Value is null.
type Value struct {
	kind    Kind
	str     string
	num     int64
	flt     float64
	flag    bool
	entries []Entry
	items   []Value
	addr    [6]byte
	pos     Pos
}

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// String returns a string scalar.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an integer scalar.
func Int(i int64) Value { return Value{kind: KindInt, num: i} }

// Float returns a floating point scalar.
func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }

// Bool returns a boolean scalar.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// IPv4 returns a validated IPv4 address leaf.
func IPv4(ip [4]byte) Value {
	v := Value{kind: KindIPv4}
	copy(v.addr[:], ip[:])
	return v
}

// MAC returns a validated hardware address leaf.
func MAC(mac [6]byte) Value {
	return Value{kind: KindMAC, addr: mac}
}

// Map returns a mapping with the given entries in order. Later entries with a
// duplicate key replace earlier ones but keep the earlier position in order.
func Map(entries ...Entry) Value {
	v := Value{kind: KindMap}
	for _, e := range entries {
		v = v.Set(e.Key, e.Value)
	}
	if v.entries == nil {
		v.entries = []Entry{}
	}
	return v
}

// List returns a list of the given items.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, items: cp}
}

// E is shorthand for building an Entry.
func E(key string, v Value) Entry {
	return Entry{Key: key, Value: v}
}

// Kind returns the discriminant of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Pos returns the source position of the value.
func (v Value) Pos() Pos { return v.pos }

// WithPos returns a copy of the value carrying the given position.
func (v Value) WithPos(p Pos) Value {
	v.pos = p
	return v
}

// AsString returns the string payload of a string scalar.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsInt returns the payload of an integer scalar.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// AsFloat returns the payload of a float scalar.
func (v Value) AsFloat() (float64, bool) {
	return v.flt, v.kind == KindFloat
}

// AsBool returns the payload of a boolean scalar.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// AsIPv4 returns the four address bytes of an IPv4 leaf.
func (v Value) AsIPv4() ([4]byte, bool) {
	var ip [4]byte
	copy(ip[:], v.addr[:4])
	return ip, v.kind == KindIPv4
}

// AsMAC returns the six address bytes of a MAC leaf.
func (v Value) AsMAC() ([6]byte, bool) {
	return v.addr, v.kind == KindMAC
}

// Entries returns a copy of the entries of a mapping in order.
func (v Value) Entries() []Entry {
	cp := make([]Entry, len(v.entries))
	copy(cp, v.entries)
	return cp
}

// Items returns a copy of the items of a list.
func (v Value) Items() []Value {
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

// Len returns the number of entries of a mapping or items of a list.
func (v Value) Len() int {
	switch v.kind {
	case KindMap:
		return len(v.entries)
	case KindList:
		return len(v.items)
	}
	return 0
}

// Keys returns the keys of a mapping in order.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.entries))
	for _, e := range v.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Get looks up a key of a mapping.
func (v Value) Get(key string) (Value, bool) {
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether a mapping contains the key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// GetString returns the string under key, or def when the key is absent or
// not a string.
func (v Value) GetString(key, def string) string {
	if field, ok := v.Get(key); ok {
		if s, ok := field.AsString(); ok {
			return s
		}
	}
	return def
}

// Set returns a copy of the mapping with key bound to val. An existing key
// keeps its position in the order.
func (v Value) Set(key string, val Value) Value {
	entries := make([]Entry, len(v.entries), len(v.entries)+1)
	copy(entries, v.entries)
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Value = val
			v.entries = entries
			return v
		}
	}
	v.kind = KindMap
	v.entries = append(entries, Entry{Key: key, Value: val})
	return v
}

// Equal compares two values structurally, ignoring positions.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.num == other.num
	case KindFloat:
		return v.flt == other.flt
	case KindBool:
		return v.flag == other.flag
	case KindIPv4, KindMAC:
		return v.addr == other.addr
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.entries) != len(other.entries) {
			return false
		}
		for i := range v.entries {
			if v.entries[i].Key != other.entries[i].Key || !v.entries[i].Value.Equal(other.entries[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts the value into plain Go data: maps become
// map[string]any, lists []any, addresses their canonical text.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.flag
	case KindIPv4, KindMAC:
		return v.String()
	case KindList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.entries))
		for _, e := range v.entries {
			out[e.Key] = e.Value.Interface()
		}
		return out
	}
	return nil
}

// String renders the value for messages and debugging.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindIPv4:
		return fmt.Sprintf("%d.%d.%d.%d", v.addr[0], v.addr[1], v.addr[2], v.addr[3])
	case KindMAC:
		parts := make([]string, 6)
		for i, b := range v.addr {
			parts[i] = fmt.Sprintf("%02X", b)
		}
		return strings.Join(parts, ":")
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, len(v.entries))
		for i, e := range v.entries {
			parts[i] = e.Key + ": " + e.Value.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "<invalid>"
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory representation of a configuration
// document. Loaders turn YAML or HCL into a tree of Values; validators
// consume that tree and produce a new one whose leaves are typed.
//
// # Core Concepts
//
//   - Value: a tagged variant with an explicit Kind. Scalars (string, int,
//     float, bool, null), ordered mappings and ordered lists come from the
//     loader. IPv4 and MAC leaves only appear after validation.
//
//   - Entry: one key/value pair of a mapping. Mappings keep the order in which
//     keys appeared in the document because the compiler processes top-level
//     components in that order.
//
//   - Pos: the file, line and column a value was read from. Positions flow into
//     error diagnostics so a failure can be shown next to its source.
//
// Why not map[string]any?
//
// A plain Go map loses key order and forces every validator to type-switch on
// arbitrary interface values. The explicit Kind lets each validator check the
// shape it accepts and report a precise error otherwise, and Values are
// immutable so a validated tree can be shared without copying.
package model

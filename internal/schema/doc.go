// Package schema composes primitive validators into structural ones.
//
// A Schema validates a mapping field by field. Schemas are immutable values:
// Extend builds a derived schema whose fields override or add to the base,
// which is how related shapes (for example an access point network and a
// station network) share one definition. Combinators wrap validators:
//
//   - All runs post-structural Checks once the structure is valid.
//   - OneOf accepts the first matching alternative and otherwise reports the
//     first alternative's error as a shape error.
//   - ListOf validates every item of a list.
//   - Chain feeds one validator's output to the next.
//   - Removed rejects keys that are no longer supported.
//
// Every validator can be exported as a JSON schema for editor tooling.
package schema

// Package registry provides the identifier namespace of a compilation run.
//
// Components declare the entities they create (for example the variable that
// will hold the wireless network subsystem) and later components resolve
// those names to reference them. A Registry belongs to exactly one run: it is
// created or Reset when the run starts and is never shared between runs.
//
// Components do not write to the Registry directly. They work through a Txn
// obtained from Begin, and the driver commits the transaction only when the
// component's validation and code generation both succeeded. A failing
// component therefore leaves no trace in the namespace.
package registry

// Package emit records the side-effecting statements of the generated
// program.
//
// A Program is the ordered list of statements of one run. Components never
// append to it directly: each gets an Emitter that buffers its statements and
// flushes them in one step after the component succeeded, so the program
// never contains half of a component.
package emit

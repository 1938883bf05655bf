// internal/fieldpath/doc.go

/*
Package fieldpath locates a value inside a configuration document.

A path is a dot-separated sequence of segments where each segment may carry
a list index, e.g. `networks[1].manual_ip.gateway`. Validators extend paths
as they descend into mappings and lists so that every error can point at the
exact field that caused it.
*/
package fieldpath

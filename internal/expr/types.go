package expr

// Type names a class or struct of the target runtime.
type Type struct {
	Namespace string
	Name      string
}

// String returns the qualified name, e.g. `esphomelib::WiFiComponent`.
func (t Type) String() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "::" + t.Name
}

// IsZero reports whether the type is unset.
func (t Type) IsZero() bool {
	return t.Name == ""
}

// Namespace groups the types of one library of the target runtime.
type Namespace string

// Global is the unnamed namespace.
const Global Namespace = ""

// Class returns the type name inside the namespace.
func (ns Namespace) Class(name string) Type {
	return Type{Namespace: string(ns), Name: name}
}

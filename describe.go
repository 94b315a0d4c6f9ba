package descr

import "reflect"

// Describable is implemented by types that declare which of their components
// appear in their description. Describe receives a [Formatter] already seeded
// with the type's name and the default inclusion policy; it appends
// components and may mutate the Formatter's settings. Describe must be
// deterministic and must not perform I/O, since it runs wherever a textual
// representation is requested.
type Describable interface {
	Describe(f *Formatter)
}

// String builds the description of v: it constructs a [Formatter] seeded
// with v's runtime type name, invokes v.Describe, and renders the result.
// A type gets a conventional Stringer for free by delegating:
//
//	func (p Person) String() string { return descr.String(p) }
func String(v Describable) string {
	return build(v).String()
}

func build(v Describable) *Formatter {
	f := New(typeName(v))
	v.Describe(f)
	return f
}

// typeName returns the name of v's runtime type, dereferencing pointers.
// Unnamed types yield "".
func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

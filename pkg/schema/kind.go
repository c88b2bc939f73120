// Package schema models a configuration tree as explicit, statically
// declared descriptors: namespaces containing typed slots.
//
// The tree is built once at definition time. The binder package walks it and
// assigns slot values parsed from a property set; nothing in here is
// discovered through reflection.
package schema

// Kind identifies the declared type of a slot, of a collection's elements,
// or of a map's keys and values.
type Kind uint8

const (
	TypeString Kind = iota
	TypeInt
	TypeLong
	TypeBool
	TypeFloat
	TypeDouble
	TypeEnum
	TypeCollection
	TypeMap
)

// String returns the lower-case name of the kind, suitable for diagnostics.
func (k Kind) String() string {
	switch k {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeBool:
		return "bool"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeEnum:
		return "enum"
	case TypeCollection:
		return "collection"
	case TypeMap:
		return "map"
	}
	return "unknown"
}

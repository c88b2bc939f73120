package schema

import (
	"github.com/pkg/errors"
)

// Slot is a single named, typed, mutable configuration value. Slots are
// created through the typed constructors (StringSlot, IntSlot, ...) and
// attached to a Namespace with Add.
//
// A slot owns its current value unless Bind routes reads and writes through
// caller-supplied accessors.
type Slot struct {
	name      string
	kind      Kind
	elem      Kind
	mapKey    Kind
	mapValue  Kind
	container Container
	maxLength int
	enums     map[string]any
	frozen    bool

	value  any
	getter func() any
	setter func(any) error
}

func newSlot(name string, kind Kind) *Slot {
	if name == "" {
		panic("schema: slot name must not be empty")
	}
	return &Slot{name: name, kind: kind}
}

// StringSlot declares a string slot with a default value.
func StringSlot(name, def string) *Slot {
	s := newSlot(name, TypeString)
	s.value = def
	return s
}

// IntSlot declares an int slot with a default value.
func IntSlot(name string, def int) *Slot {
	s := newSlot(name, TypeInt)
	s.value = def
	return s
}

// LongSlot declares an int64 slot with a default value.
func LongSlot(name string, def int64) *Slot {
	s := newSlot(name, TypeLong)
	s.value = def
	return s
}

// BoolSlot declares a bool slot with a default value.
func BoolSlot(name string, def bool) *Slot {
	s := newSlot(name, TypeBool)
	s.value = def
	return s
}

// FloatSlot declares a float32 slot with a default value.
func FloatSlot(name string, def float32) *Slot {
	s := newSlot(name, TypeFloat)
	s.value = def
	return s
}

// DoubleSlot declares a float64 slot with a default value.
func DoubleSlot(name string, def float64) *Slot {
	s := newSlot(name, TypeDouble)
	s.value = def
	return s
}

// EnumSlot declares an enum slot. values maps constant names to the values
// they stand for; binding matches the upper-cased property value against
// those names, so names should be declared upper-case.
func EnumSlot(name string, def any, values map[string]any) *Slot {
	s := newSlot(name, TypeEnum)
	s.value = def
	s.enums = values
	return s
}

// CollectionSlot declares a collection slot of the given concrete variant
// (List, Set, SortedSet, ...) holding elements of the elem kind.
func CollectionSlot(name string, container Container, elem Kind) *Slot {
	s := newSlot(name, TypeCollection)
	s.container = container
	s.elem = elem
	return s
}

// MapSlot declares a map slot of the given concrete variant (Map, SortedMap,
// ...) with keys of the key kind and values of the value kind.
func MapSlot(name string, container Container, key, value Kind) *Slot {
	s := newSlot(name, TypeMap)
	s.container = container
	s.mapKey = key
	s.mapValue = value
	return s
}

// WithMaxLength constrains scalar values bound into the slot to at most max
// characters. Zero means unconstrained.
func (s *Slot) WithMaxLength(max int) *Slot {
	if max < 0 {
		max = 0
	}
	s.maxLength = max
	return s
}

// WithValue sets the slot's current value. Intended for defaults at
// schema-definition time; it panics if a bound setter rejects the value.
func (s *Slot) WithValue(v any) *Slot {
	if s.setter != nil {
		if err := s.setter(v); err != nil {
			panic("schema: default value rejected for slot " + s.name + ": " + err.Error())
		}
		return s
	}
	s.value = v
	return s
}

// WithEnumValues attaches an enum constant table to a collection or map slot
// whose element, key or value kind is TypeEnum.
func (s *Slot) WithEnumValues(values map[string]any) *Slot {
	s.enums = values
	return s
}

// Bind routes the slot's value through caller-owned accessors instead of
// slot-internal storage. Useful when the configuration lives in an existing
// struct the caller wants mutated in place.
func (s *Slot) Bind(get func() any, set func(any) error) *Slot {
	s.getter = get
	s.setter = set
	return s
}

// Freeze marks the slot read-only. Subsequent writes, including binder
// assignments, fail.
func (s *Slot) Freeze() *Slot {
	s.frozen = true
	return s
}

// Name returns the slot's simple name.
func (s *Slot) Name() string { return s.name }

// Kind returns the slot's declared kind.
func (s *Slot) Kind() Kind { return s.kind }

// ElemKind returns the element kind of a collection slot.
func (s *Slot) ElemKind() Kind { return s.elem }

// KeyKind returns the key kind of a map slot.
func (s *Slot) KeyKind() Kind { return s.mapKey }

// ValueKind returns the value kind of a map slot.
func (s *Slot) ValueKind() Kind { return s.mapValue }

// Container returns the declared concrete container variant.
func (s *Slot) Container() Container { return s.container }

// MaxLength returns the declared length constraint, zero when unconstrained.
func (s *Slot) MaxLength() int { return s.maxLength }

// EnumValue looks up an enum constant by name.
func (s *Slot) EnumValue(name string) (any, bool) {
	v, ok := s.enums[name]
	return v, ok
}

// Value returns the slot's current value.
func (s *Slot) Value() any {
	if s.getter != nil {
		return s.getter()
	}
	return s.value
}

// SetValue assigns the slot's current value. It fails if the slot is frozen
// or a bound setter rejects the value.
func (s *Slot) SetValue(v any) error {
	if s.frozen {
		return errors.Errorf("slot %q is read-only", s.name)
	}
	if s.setter != nil {
		return s.setter(v)
	}
	s.value = v
	return nil
}

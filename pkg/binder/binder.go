// Package binder assigns flat string properties into a typed configuration
// schema.
//
// Bind walks a schema tree depth-first and, for every slot whose key path
// matches a property, converts the raw string into the slot's declared kind
// and writes it. Slots without a matching property keep their current value,
// so a schema pre-loaded with defaults can be bound repeatedly against
// successive property layers.
//
// Key paths are the dot-joined, lower-cased namespace names down to the
// slot. Collections bind from a single comma-separated value, maps bind from
// one `path[index]` property per entry, and string slots with a declared
// maximum length are truncated before assignment.
package binder

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/animalet/propconf-go/internal/strutil"
	"github.com/animalet/propconf-go/pkg/properties"
	"github.com/animalet/propconf-go/pkg/schema"
)

// Bind assigns the values in props to the slots of the schema rooted at
// root, in place. Property keys are matched case-insensitively against slot
// key paths, and any slot without a matching key is left untouched.
//
// The walk stops at the first failure and the error is returned as-is;
// slots already assigned stay assigned. Callers that need all-or-nothing
// semantics can take a schema snapshot first and restore it on error.
//
// Parameters:
//   - props: the flattened property set to read from
//   - root: the schema tree whose slots receive the values
//
// Returns an error if either argument is nil, if a value or collection
// element cannot be converted to its declared kind, if a slot declares an
// unrecognized container variant, or if a slot rejects the write.
func Bind(props *properties.Set, root *schema.Namespace) error {
	if props == nil {
		return errors.New("property set is nil")
	}
	if root == nil {
		return errors.New("schema root is nil")
	}

	var bindErr error
	root.Walk(func(path string, slot *schema.Slot) bool {
		if err := bindSlot(props, path, slot); err != nil {
			bindErr = err
			return false
		}
		return true
	})
	return bindErr
}

func bindSlot(props *properties.Set, path string, slot *schema.Slot) error {
	switch slot.Kind() {
	case schema.TypeMap:
		return bindMap(props, path, slot)
	case schema.TypeCollection:
		value, ok := props.GetFold(path)
		if !ok {
			return nil
		}
		return bindCollection(path, slot, value)
	default:
		value, ok := props.GetFold(path)
		if !ok {
			return nil
		}
		return bindScalar(props, path, slot, value)
	}
}

// bindMap handles the two map key syntaxes. The bare `path[]` sentinel
// empties a map that currently holds entries; in every other case the
// indexed `path[key]` entries are collected into a fresh container, and an
// empty scan leaves the slot unchanged.
func bindMap(props *properties.Set, path string, slot *schema.Slot) error {
	if props.HasFold(path+"[]") && mapSize(slot.Value()) > 0 {
		empty, ok := newMap(slot.Container())
		if !ok {
			return &UnsupportedContainerTypeError{KeyPath: path, Container: slot.Container()}
		}
		return assign(path, slot, empty)
	}

	dst, ok := newMap(slot.Container())
	if !ok {
		return &UnsupportedContainerTypeError{KeyPath: path, Container: slot.Container()}
	}

	open := path + "["
	props.Range(func(key, value string) bool {
		if len(key) <= len(open)+1 ||
			!strings.EqualFold(key[:len(open)], open) ||
			!strings.HasSuffix(key, "]") {
			return true
		}
		index := key[len(open) : len(key)-1]
		putEntry(dst,
			convertOrRaw(slot, slot.KeyKind(), index),
			convertOrRaw(slot, slot.ValueKind(), value))
		return true
	})

	if mapSize(dst) == 0 {
		return nil
	}
	return assign(path, slot, dst)
}

// bindCollection splits value on commas and converts each element to the
// slot's element kind. A blank value yields an empty container, blank
// elements stay nil, and elements are not trimmed before conversion.
func bindCollection(path string, slot *schema.Slot, value string) error {
	var elems []any
	if !strutil.IsBlank(value) {
		tokens := strings.Split(value, ",")
		elems = make([]any, 0, len(tokens))
		for _, token := range tokens {
			v, err := convert(slot, slot.ElemKind(), token)
			if err != nil {
				return &ConversionError{KeyPath: path, Value: token, Kind: slot.ElemKind(), Err: err}
			}
			elems = append(elems, v)
		}
	}

	built, ok := buildCollection(slot.Container(), elems)
	if !ok {
		return &UnsupportedContainerTypeError{KeyPath: path, Container: slot.Container()}
	}
	return assign(path, slot, built)
}

// bindScalar truncates string slots that declare a maximum length, converts
// the value to the slot's kind and assigns it. A blank value converts to
// nil and is skipped, preserving the slot's current value.
func bindScalar(props *properties.Set, path string, slot *schema.Slot, value string) error {
	if slot.MaxLength() > 0 {
		limit := effectiveLimit(props, path, slot.MaxLength())
		if strutil.RuneLen(value) > limit {
			log.Warn().
				Str("key", path).
				Int("limit", limit).
				Int("length", strutil.RuneLen(value)).
				Msg("Truncating over-length property value")
			value = strutil.Truncate(value, limit)
		}
	}

	v, err := convert(slot, slot.Kind(), value)
	if err != nil {
		return &ConversionError{KeyPath: path, Value: value, Kind: slot.Kind(), Err: err}
	}
	if v == nil {
		return nil
	}
	return assign(path, slot, v)
}

// effectiveLimit applies the `path#length` override to a slot's declared
// maximum length. A malformed override keeps the declared limit; this is
// the one conversion failure that never aborts a bind. Negative overrides
// clamp to zero.
func effectiveLimit(props *properties.Set, path string, declared int) int {
	override, ok := props.GetFold(path + "#length")
	if !ok {
		return declared
	}
	n, err := strconv.Atoi(override)
	if err != nil {
		log.Warn().
			Str("key", path+"#length").
			Str("value", override).
			Msg("Ignoring malformed length override")
		return declared
	}
	if n < 0 {
		return 0
	}
	return n
}

func assign(path string, slot *schema.Slot, v any) error {
	if err := slot.SetValue(v); err != nil {
		return &BindingAccessError{KeyPath: path, Err: err}
	}
	return nil
}

package binder

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/animalet/propconf-go/pkg/schema"
)

// buildCollection materializes a collection variant from converted elements.
// ok is false for variants the binder does not recognize.
func buildCollection(c schema.Container, elems []any) (any, bool) {
	switch c {
	case schema.List, schema.LinkedList, schema.ArrayList:
		out := make([]any, len(elems))
		copy(out, elems)
		return out, true
	case schema.Set, schema.UnorderedSet:
		out := make(map[any]struct{}, len(elems))
		for _, e := range elems {
			out[e] = struct{}{}
		}
		return out, true
	case schema.SortedSet:
		return treeset.NewWith(schema.Compare, elems...), true
	default:
		return nil, false
	}
}

// newMap materializes an empty map variant. ok is false for variants the
// binder does not recognize.
func newMap(c schema.Container) (any, bool) {
	switch c {
	case schema.Map, schema.UnorderedMap:
		return map[any]any{}, true
	case schema.SortedMap:
		return treemap.NewWith(schema.Compare), true
	default:
		return nil, false
	}
}

func putEntry(container, key, value any) {
	switch m := container.(type) {
	case map[any]any:
		m[key] = value
	case *treemap.Map:
		m.Put(key, value)
	}
}

// mapSize reports the entry count of a recognized map variant and zero for
// nil or anything else.
func mapSize(container any) int {
	switch m := container.(type) {
	case map[any]any:
		return len(m)
	case *treemap.Map:
		return m.Size()
	}
	return 0
}

package schema

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"

	"github.com/animalet/propconf-go/internal/snapshot"
)

// Snapshot captures the current value of every slot in the tree, keyed by
// fully-qualified key path. Values are deep copies: containers are rebuilt
// entry by entry and other values are cloned, so later binds cannot reach
// back into the snapshot.
//
// Capture one right after schema definition and the pristine defaults can be
// reinstated with Restore before re-binding a fresh property set.
func (n *Namespace) Snapshot() (map[string]any, error) {
	snap := make(map[string]any)
	var walkErr error

	n.Walk(func(path string, slot *Slot) bool {
		v, err := cloneValue(slot.Value())
		if err != nil {
			walkErr = errors.Wrapf(err, "failed to snapshot slot %q", path)
			return false
		}
		snap[path] = v
		return true
	})

	if walkErr != nil {
		return nil, walkErr
	}
	return snap, nil
}

// Restore assigns snapshotted values back into the tree's slots. Paths
// missing from the snapshot leave their slots untouched; values are cloned
// on the way in so the snapshot stays reusable. Writes go through each
// slot's setter, so restoring a frozen slot fails.
func (n *Namespace) Restore(snap map[string]any) error {
	var walkErr error

	n.Walk(func(path string, slot *Slot) bool {
		v, ok := snap[path]
		if !ok {
			return true
		}

		clone, err := cloneValue(v)
		if err != nil {
			walkErr = errors.Wrapf(err, "failed to restore slot %q", path)
			return false
		}
		if err := slot.SetValue(clone); err != nil {
			walkErr = errors.Wrapf(err, "failed to restore slot %q", path)
			return false
		}
		return true
	})

	return walkErr
}

// cloneValue deep-copies one slot value. Container representations are
// rebuilt explicitly because the sorted variants carry unexported tree
// state; scalar kinds are immutable and pass through. Anything else (enum
// constants of caller-defined types, externally bound values) goes through
// the reflective copier.
func cloneValue(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string, bool, int, int64, float32, float64:
		return val, nil
	case []any:
		out := make([]any, len(val))
		copy(out, val)
		return out, nil
	case map[any]struct{}:
		out := make(map[any]struct{}, len(val))
		for k := range val {
			out[k] = struct{}{}
		}
		return out, nil
	case map[any]any:
		out := make(map[any]any, len(val))
		for k, item := range val {
			out[k] = item
		}
		return out, nil
	case *treeset.Set:
		return treeset.NewWith(Compare, val.Values()...), nil
	case *treemap.Map:
		out := treemap.NewWith(Compare)
		for _, k := range val.Keys() {
			item, _ := val.Get(k)
			out.Put(k, item)
		}
		return out, nil
	default:
		return snapshot.Value(val)
	}
}

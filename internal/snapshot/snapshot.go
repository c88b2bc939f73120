// Package snapshot provides deep copy helpers used to capture and restore
// configuration values without sharing mutable state.
package snapshot

import (
	"github.com/pkg/errors"
	"github.com/tiendc/go-deepcopy"
)

// Copy creates a deep copy of the source object using reflection.
// All slices, maps, and nested pointers are recursively copied so the
// returned object shares no mutable state with the source.
//
// Parameters:
//   - src: Pointer to the object to copy
//
// Returns:
//   - Pointer to a new, deeply-copied object
//   - Error if the copy operation fails
//
// If src is nil, returns (nil, nil).
func Copy[T any](src *T) (*T, error) {
	if src == nil {
		return nil, nil
	}

	var dst T
	if err := deepcopy.Copy(&dst, src); err != nil {
		return nil, errors.Wrapf(err, "failed to deep copy type %T", src)
	}

	return &dst, nil
}

// MustCopy creates a deep copy of the source object and panics if the
// operation fails. It is intended for schema-definition and initialization
// code where a copy failure indicates a programming error rather than a
// runtime condition.
//
// If src is nil, returns nil (does not panic).
func MustCopy[T any](src *T) *T {
	if src == nil {
		return nil
	}

	result, err := Copy(src)
	if err != nil {
		panic("failed to create snapshot: " + err.Error())
	}

	return result
}

// Value deep-copies a boxed value of unknown dynamic type. Configuration
// slots store their values as `any`, so callers taking snapshots of slot
// state cannot name a concrete type parameter for Copy.
//
// A nil value copies to nil.
func Value(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	copied, err := Copy(&v)
	if err != nil {
		return nil, err
	}

	return *copied, nil
}

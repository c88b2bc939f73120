// Package properties implements the flat key/value property set consumed by
// the binder and the placeholder sources.
//
// A Set preserves the order in which keys were first inserted, which makes
// indexed map entries (`key[index]=value`) bind deterministically, and it
// answers case-insensitive lookups without losing the original spelling of
// its keys.
package properties

import (
	"sort"
	"strings"
)

// Set is an ordered mapping from string key to string value.
//
// Keys can be looked up exactly (Get, Has) or case-insensitively
// (GetFold, HasFold). When two keys differ only by case, the first one
// inserted answers folded lookups.
//
// A Set is not safe for concurrent mutation; build it up front and share it
// read-only afterwards.
type Set struct {
	keys   []string
	values map[string]string
	folded map[string]string
}

// New creates an empty property set.
func New() *Set {
	return &Set{
		values: make(map[string]string),
		folded: make(map[string]string),
	}
}

// FromMap creates a property set from a plain map. Keys are inserted in
// sorted order so the resulting iteration order is deterministic.
func FromMap(m map[string]string) *Set {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	set := New()
	for _, k := range keys {
		set.Put(k, m[k])
	}
	return set
}

// Put inserts or replaces the value for key. A replaced key keeps its
// original position in the iteration order.
func (s *Set) Put(key, value string) {
	if _, exists := s.values[key]; exists {
		s.values[key] = value
		return
	}

	s.keys = append(s.keys, key)
	s.values[key] = value

	f := strings.ToLower(key)
	if _, ok := s.folded[f]; !ok {
		s.folded[f] = key
	}
}

// Get returns the value for an exact key.
func (s *Set) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether an exact key is present.
func (s *Set) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// GetFold returns the value for a key matched case-insensitively. An exact
// match wins over a folded one.
func (s *Set) GetFold(key string) (string, bool) {
	if v, ok := s.values[key]; ok {
		return v, true
	}
	canonical, ok := s.folded[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	return s.values[canonical], true
}

// HasFold reports whether a key is present under case-insensitive matching.
func (s *Set) HasFold(key string) bool {
	_, ok := s.GetFold(key)
	return ok
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return len(s.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (s *Set) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Range calls fn for every key/value pair in insertion order until fn
// returns false.
func (s *Set) Range(fn func(key, value string) bool) {
	for _, k := range s.keys {
		if !fn(k, s.values[k]) {
			return
		}
	}
}

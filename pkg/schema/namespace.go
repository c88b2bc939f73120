package schema

import "strings"

// Namespace is one node of the configuration tree. It carries an ordered
// list of slots and an ordered list of child namespaces.
//
// The fully-qualified key path of a slot is the dot-joined, lower-cased
// sequence of namespace names from the root down to the slot's own name;
// namespaces with empty names contribute no path segment, which allows an
// anonymous root the way a top-level configuration holder usually wants.
type Namespace struct {
	name     string
	children []*Namespace
	childIdx map[string]*Namespace
	slots    []*Slot
	slotIdx  map[string]*Slot
}

// New creates a namespace. An empty name is allowed and is skipped when key
// paths are computed.
func New(name string) *Namespace {
	return &Namespace{
		name:     name,
		childIdx: make(map[string]*Namespace),
		slotIdx:  make(map[string]*Slot),
	}
}

// Namespace returns the child namespace with the given name, creating it on
// first use. Matching is case-insensitive, so a tree cannot end up with two
// children whose names differ only by case.
func (n *Namespace) Namespace(name string) *Namespace {
	folded := strings.ToLower(name)
	if child, ok := n.childIdx[folded]; ok {
		return child
	}

	child := New(name)
	n.childIdx[folded] = child
	n.children = append(n.children, child)
	return child
}

// Add attaches slots to the namespace. It panics if a slot name collides
// case-insensitively with one already present; key paths must stay unique.
func (n *Namespace) Add(slots ...*Slot) *Namespace {
	for _, s := range slots {
		folded := strings.ToLower(s.name)
		if _, ok := n.slotIdx[folded]; ok {
			panic("schema: duplicate slot " + s.name + " in namespace " + n.name)
		}
		n.slotIdx[folded] = s
		n.slots = append(n.slots, s)
	}
	return n
}

// Name returns the namespace's simple name.
func (n *Namespace) Name() string { return n.name }

// Children returns the child namespaces in declaration order.
func (n *Namespace) Children() []*Namespace {
	out := make([]*Namespace, len(n.children))
	copy(out, n.children)
	return out
}

// Slots returns the namespace's slots in declaration order.
func (n *Namespace) Slots() []*Slot {
	out := make([]*Slot, len(n.slots))
	copy(out, n.slots)
	return out
}

// Walk visits every slot in the tree depth-first, in declaration order,
// passing each slot's fully-qualified key path. It stops early when fn
// returns false.
func (n *Namespace) Walk(fn func(path string, slot *Slot) bool) {
	n.walk("", fn)
}

func (n *Namespace) walk(prefix string, fn func(path string, slot *Slot) bool) bool {
	prefix = joinPath(prefix, n.name)
	for _, s := range n.slots {
		if !fn(joinPath(prefix, s.name), s) {
			return false
		}
	}
	for _, child := range n.children {
		if !child.walk(prefix, fn) {
			return false
		}
	}
	return true
}

// Find returns the slot addressed by a dotted key path, matched
// case-insensitively, or nil when no slot has that path.
func (n *Namespace) Find(keyPath string) *Slot {
	var found *Slot
	n.Walk(func(path string, slot *Slot) bool {
		if strings.EqualFold(path, keyPath) {
			found = slot
			return false
		}
		return true
	})
	return found
}

func joinPath(prefix, name string) string {
	name = strings.ToLower(name)
	switch {
	case name == "":
		return prefix
	case prefix == "":
		return name
	default:
		return prefix + "." + name
	}
}

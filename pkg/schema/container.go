package schema

// Container names the concrete variant backing a collection or map slot.
//
// The set of recognized variants is closed, but the type is an open string:
// a schema may declare a variant the binder does not recognize, and the
// mismatch surfaces at bind time as an unsupported-container failure naming
// the slot, not as a definition-time panic.
type Container string

const (
	// Sequence variants. Go slices are both insertion-ordered and random
	// access, so all three share the []any representation.
	List       Container = "list"
	LinkedList Container = "linked-list"
	ArrayList  Container = "array-list"

	// Set variants. Set and UnorderedSet are backed by map[any]struct{};
	// SortedSet keeps its elements ordered by Compare.
	Set          Container = "set"
	UnorderedSet Container = "unordered-set"
	SortedSet    Container = "sorted-set"

	// Map variants. Map and UnorderedMap are backed by map[any]any;
	// SortedMap keeps its keys ordered by Compare.
	Map          Container = "map"
	UnorderedMap Container = "unordered-map"
	SortedMap    Container = "sorted-map"
)

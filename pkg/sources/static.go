package sources

// staticSource answers lookups from a fixed in-memory table.
type staticSource map[string]string

// Static creates a source backed by a fixed map. Useful for programmatic
// overrides and for tests.
func Static(values map[string]string) Source {
	return staticSource(values)
}

func (s staticSource) Lookup(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

func (s staticSource) Name() string { return "Static" }

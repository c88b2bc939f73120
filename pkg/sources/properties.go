package sources

import (
	"github.com/animalet/propconf-go/pkg/properties"
)

// propertiesSource answers lookups from a property set. Keys are matched
// exactly; placeholder names are case-sensitive even though schema binding
// is not.
type propertiesSource struct {
	props *properties.Set
}

// Properties creates a source backed by a property set.
func Properties(props *properties.Set) Source {
	return &propertiesSource{props: props}
}

func (p *propertiesSource) Lookup(name string) (string, bool) {
	if p.props == nil {
		return "", false
	}
	return p.props.Get(name)
}

func (p *propertiesSource) Name() string { return "Properties" }

// Package sources provides layered value sources for placeholder resolution.
//
// Each Source answers lookups by name from one backend: a fixed map, the
// process environment, a property set, secret files on disk, HashiCorp Vault
// or AWS Secrets Manager. Sources compose into a Chain whose first hit wins.
package sources

import (
	"github.com/animalet/propconf-go/pkg/properties"
)

// Source answers value lookups by name from one backend.
type Source interface {
	// Lookup returns the value for name and whether it was found. A failed
	// or unreachable backend reports absent rather than failing the lookup.
	Lookup(name string) (string, bool)

	// Name identifies the source in logs and diagnostics.
	Name() string
}

// Chain consults its sources in order and returns the first hit. Nil
// entries are skipped. Chain itself satisfies Source, so chains nest.
type Chain []Source

// Lookup returns the first value any source in the chain has for name.
func (c Chain) Lookup(name string) (string, bool) {
	for _, src := range c {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

// Name identifies the chain in logs.
func (c Chain) Name() string { return "Chain" }

// Standard builds the conventional lookup chain for placeholder resolution:
// explicit overrides first, then the process environment, then the property
// set. Empty or nil pieces are left out.
func Standard(overrides map[string]string, props *properties.Set) Chain {
	chain := make(Chain, 0, 3)
	if len(overrides) > 0 {
		chain = append(chain, Static(overrides))
	}
	chain = append(chain, Env())
	if props != nil {
		chain = append(chain, Properties(props))
	}
	return chain
}

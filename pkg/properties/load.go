package properties

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	magiconair "github.com/magiconair/properties"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Parse reads flat `key=value` properties text, preserving key order.
//
// Placeholder expansion is disabled on purpose: `${...}` spans in values are
// kept verbatim so they can be resolved later by the placeholder package
// against the caller's own sources.
func Parse(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read properties input")
	}

	p := magiconair.NewProperties()
	p.DisableExpansion = true
	if err := p.Load(data, magiconair.UTF8); err != nil {
		return nil, errors.Wrap(err, "failed to parse properties input")
	}

	set := New()
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		set.Put(key, value)
	}
	return set, nil
}

// FromYAML converts a YAML document into a flat property set.
//
// Nested mappings are flattened into dotted keys, sequences of scalars are
// joined with `,` (the collection syntax the binder splits on), and scalar
// values render with their natural textual form. Mapping keys that contain
// brackets pass through untouched, so indexed map entries (`rule[abc]`) and
// the `[]` empty-map sentinel can be written as YAML keys.
func FromYAML(data []byte) (*Set, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse YAML input")
	}

	set := New()
	if err := flatten("", doc, set); err != nil {
		return nil, err
	}
	return set, nil
}

// FromTOML converts a TOML document into a flat property set, applying the
// same flattening rules as FromYAML.
func FromTOML(data []byte) (*Set, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse TOML input")
	}

	set := New()
	if err := flatten("", doc, set); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadFile reads a property file, choosing the parser from the file
// extension: `.properties` for flat text, `.yaml`/`.yml` for YAML and
// `.toml` for TOML.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read property file %q", path)
	}

	switch filepath.Ext(path) {
	case ".properties":
		return Parse(bytes.NewReader(data))
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".toml":
		return FromTOML(data)
	default:
		return nil, errors.Errorf("unsupported property file extension %q", filepath.Ext(path))
	}
}

// flatten walks a decoded document depth-first, emitting dotted keys.
// Map keys are visited in sorted order so repeated loads of the same
// document produce the same property order.
func flatten(prefix string, node map[string]any, set *Set) error {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch v := node[k].(type) {
		case map[string]any:
			if err := flatten(key, v, set); err != nil {
				return err
			}
		case []any:
			joined, err := joinScalars(key, v)
			if err != nil {
				return err
			}
			set.Put(key, joined)
		case nil:
			set.Put(key, "")
		default:
			set.Put(key, render(v))
		}
	}
	return nil
}

// joinScalars renders a sequence as the comma-separated form the binder
// understands. Sequences of mappings or nested sequences have no flat
// representation and are rejected.
func joinScalars(key string, items []any) (string, error) {
	var buf bytes.Buffer
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		switch item.(type) {
		case map[string]any, []any:
			return "", errors.Errorf("cannot flatten non-scalar sequence element under key %q", key)
		case nil:
			// renders as an empty token
		default:
			buf.WriteString(render(item))
		}
	}
	return buf.String(), nil
}

func render(v any) string {
	return fmt.Sprintf("%v", v)
}

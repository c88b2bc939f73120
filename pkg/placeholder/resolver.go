// Package placeholder substitutes ${name} references inside configuration
// values.
//
// A Resolver scans text left to right for prefix/suffix delimited
// placeholders and replaces each with the value a Lookup returns for its
// name. Placeholders nest (the name itself may contain placeholders, which
// resolve first), resolved values are scanned again before splicing, and a
// value separator inside the name supplies a default for names the lookup
// does not know.
package placeholder

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/animalet/propconf-go/pkg/properties"
	"github.com/animalet/propconf-go/pkg/sources"
)

// Delimiters of the default placeholder syntax, ${name:default}.
const (
	DefaultPrefix         = "${"
	DefaultSuffix         = "}"
	DefaultValueSeparator = ":"
)

// wellKnownSimplePrefixes maps a suffix to the opening bracket that mirrors
// it. When the configured prefix ends with that bracket, nesting is counted
// by the bracket alone so that "${outer${inner}}" pairs up correctly.
var wellKnownSimplePrefixes = map[string]string{
	"}": "{",
	"]": "[",
	")": "(",
}

// Lookup resolves a placeholder name to its value. The second return value
// reports whether the name was found; an empty string with true is a valid
// resolution.
type Lookup func(name string) (string, bool)

// Resolver substitutes placeholders delimited by a fixed prefix and suffix.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	prefix             string
	suffix             string
	simplePrefix       string
	valueSeparator     string
	ignoreUnresolvable bool
}

// Shared resolvers for the default ${name:default} syntax.
var (
	// Default leaves placeholders it cannot resolve in the text untouched.
	Default = MustNew(DefaultPrefix, DefaultSuffix, DefaultValueSeparator, true)

	// Strict fails on the first placeholder it cannot resolve.
	Strict = MustNew(DefaultPrefix, DefaultSuffix, DefaultValueSeparator, false)
)

// New creates a Resolver.
//
// Parameters:
//   - prefix: the opening delimiter, for example "${"
//   - suffix: the closing delimiter, for example "}"
//   - valueSeparator: separates a placeholder name from its inline default;
//     empty disables inline defaults
//   - ignoreUnresolvable: leave unresolvable placeholders in place instead
//     of failing
//
// Returns an error if prefix or suffix is empty.
func New(prefix, suffix, valueSeparator string, ignoreUnresolvable bool) (*Resolver, error) {
	if prefix == "" {
		return nil, errors.New("placeholder prefix must not be empty")
	}
	if suffix == "" {
		return nil, errors.New("placeholder suffix must not be empty")
	}

	simple := prefix
	if mirror, ok := wellKnownSimplePrefixes[suffix]; ok && strings.HasSuffix(prefix, mirror) {
		simple = mirror
	}

	return &Resolver{
		prefix:             prefix,
		suffix:             suffix,
		simplePrefix:       simple,
		valueSeparator:     valueSeparator,
		ignoreUnresolvable: ignoreUnresolvable,
	}, nil
}

// MustNew is New, panicking on invalid delimiters. Intended for package-level
// resolver variables.
func MustNew(prefix, suffix, valueSeparator string, ignoreUnresolvable bool) *Resolver {
	r, err := New(prefix, suffix, valueSeparator, ignoreUnresolvable)
	if err != nil {
		panic("placeholder: " + err.Error())
	}
	return r
}

// Resolve substitutes every placeholder in text with the value lookup
// returns for its name.
//
// A prefix with no matching suffix stays in the text literally and scanning
// continues after it. When the lookup misses a name that contains the value
// separator, the part before the first separator is retried and the part
// after it is used as the value if that also misses. Resolved values are
// themselves scanned for placeholders before splicing.
//
// Returns an error when lookup is nil, when a placeholder resolves through
// itself, or, for a strict resolver, when a placeholder has no value.
func (r *Resolver) Resolve(text string, lookup Lookup) (string, error) {
	if lookup == nil {
		return "", errors.New("placeholder lookup is nil")
	}
	return r.parse(text, lookup, make(map[string]struct{}))
}

// ResolveProperties substitutes placeholders using the standard layered
// lookup: the process environment first, then props.
func (r *Resolver) ResolveProperties(text string, props *properties.Set) (string, error) {
	return r.Resolve(text, sources.Standard(nil, props).Lookup)
}

// ResolveSet resolves the placeholders in every value of props, returning a
// new set with the same keys in the same order. Keys themselves are never
// rewritten. The first value that fails to resolve aborts the whole set.
func (r *Resolver) ResolveSet(props *properties.Set, lookup Lookup) (*properties.Set, error) {
	if props == nil {
		return nil, errors.New("property set is nil")
	}

	out := properties.New()
	var resolveErr error
	props.Range(func(key, value string) bool {
		resolved, err := r.Resolve(value, lookup)
		if err != nil {
			resolveErr = errors.Wrapf(err, "property %q", key)
			return false
		}
		out.Put(key, resolved)
		return true
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	return out, nil
}

func (r *Resolver) parse(text string, lookup Lookup, visiting map[string]struct{}) (string, error) {
	buf := text
	startIndex := strings.Index(buf, r.prefix)

	for startIndex != -1 {
		endIndex := r.findEndIndex(buf, startIndex)
		if endIndex == -1 {
			// Unmatched prefix: keep it literally and scan on after it.
			startIndex = indexFrom(buf, r.prefix, startIndex+len(r.prefix))
			continue
		}

		placeholder := buf[startIndex+len(r.prefix) : endIndex]
		original := placeholder

		if _, active := visiting[original]; active {
			return "", &CircularReferenceError{Name: original}
		}
		visiting[original] = struct{}{}

		// The name may itself contain placeholders; resolve them first.
		placeholder, err := r.parse(placeholder, lookup, visiting)
		if err != nil {
			return "", err
		}

		value, found := lookup(placeholder)
		if !found && r.valueSeparator != "" {
			if sep := strings.Index(placeholder, r.valueSeparator); sep != -1 {
				actual := placeholder[:sep]
				fallback := placeholder[sep+len(r.valueSeparator):]
				value, found = lookup(actual)
				if !found {
					value, found = fallback, true
				}
			}
		}

		switch {
		case found:
			value, err = r.parse(value, lookup, visiting)
			if err != nil {
				return "", err
			}
			buf = buf[:startIndex] + value + buf[endIndex+len(r.suffix):]
			log.Debug().Str("placeholder", placeholder).Msg("Resolved placeholder")
			startIndex = indexFrom(buf, r.prefix, startIndex+len(value))
		case r.ignoreUnresolvable:
			// Keep the span as-is and move past its suffix.
			startIndex = indexFrom(buf, r.prefix, endIndex+len(r.suffix))
		default:
			return "", &UnresolvedPlaceholderError{Name: placeholder, Value: text}
		}

		delete(visiting, original)
	}

	return buf, nil
}

// findEndIndex locates the suffix closing the prefix that starts at
// startIndex, skipping over balanced nested pairs. Returns -1 when the
// placeholder never closes.
func (r *Resolver) findEndIndex(buf string, startIndex int) int {
	index := startIndex + len(r.prefix)
	nested := 0
	for index < len(buf) {
		switch {
		case strings.HasPrefix(buf[index:], r.suffix):
			if nested == 0 {
				return index
			}
			nested--
			index += len(r.suffix)
		case strings.HasPrefix(buf[index:], r.simplePrefix):
			nested++
			index += len(r.simplePrefix)
		default:
			index++
		}
	}
	return -1
}

// indexFrom returns the index of the first occurrence of sub at or after
// from, or -1.
func indexFrom(s, sub string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], sub)
	if i == -1 {
		return -1
	}
	return from + i
}

package binder

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/animalet/propconf-go/internal/strutil"
	"github.com/animalet/propconf-go/pkg/schema"
)

// convert parses a raw property string into the typed value for kind. A
// blank input yields a nil value for every kind, which callers treat as "no
// value"; enum lookups consult the slot's constant table after upper-casing
// the input.
func convert(slot *schema.Slot, kind schema.Kind, value string) (any, error) {
	if strutil.IsBlank(value) {
		return nil, nil
	}

	switch kind {
	case schema.TypeString:
		return value, nil
	case schema.TypeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		return n, nil
	case schema.TypeLong:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case schema.TypeBool:
		return strings.EqualFold(value, "true"), nil
	case schema.TypeFloat:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, err
		}
		return float32(f), nil
	case schema.TypeDouble:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case schema.TypeEnum:
		name := strings.ToUpper(value)
		v, ok := slot.EnumValue(name)
		if !ok {
			return nil, errors.Errorf("no enum constant named %q", name)
		}
		return v, nil
	default:
		return nil, errors.Errorf("kind %s has no scalar form", kind)
	}
}

// convertOrRaw converts one token of an indexed map entry. Tokens that do
// not convert, and blank tokens, fall back to the raw string so that a map
// scan never aborts a bind.
func convertOrRaw(slot *schema.Slot, kind schema.Kind, raw string) any {
	v, err := convert(slot, kind, raw)
	if err != nil || v == nil {
		return raw
	}
	return v
}

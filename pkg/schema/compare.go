package schema

import (
	"fmt"
	"strings"
)

const (
	rankNil = iota
	rankBool
	rankInt
	rankFloat
	rankString
	rankOther
)

// Compare imposes a total order over every value property binding can place
// in a sorted container: nil sorts first, then booleans (false before true),
// then integer values, then floating-point values, then strings. Values
// outside those classes sort last by their formatted form. The signature is
// assignable to gods' utils.Comparator, so sorted sets and maps are built
// with Compare directly.
func Compare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	switch ra {
	case rankNil:
		return 0
	case rankBool:
		av, bv := a.(bool), b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case rankInt:
		return compareInt64(asInt64(a), asInt64(b))
	case rankFloat:
		return compareFloat64(asFloat64(a), asFloat64(b))
	case rankString:
		return strings.Compare(a.(string), b.(string))
	default:
		// No natural order; fall back to the formatted value, then the
		// type name so distinct values never compare equal by accident.
		if c := strings.Compare(fmt.Sprint(a), fmt.Sprint(b)); c != 0 {
			return c
		}
		return strings.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b))
	}
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case int, int64:
		return rankInt
	case float32, float64:
		return rankFloat
	case string:
		return rankString
	default:
		return rankOther
	}
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

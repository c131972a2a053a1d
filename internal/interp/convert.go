package interp

import "github.com/bolthur/bosl-go/internal/token"

// valueForType builds a fresh Value holding one of the three widened
// numeric representations under the given target Type.
func valueForType(t Type, signed int64, unsigned uint64, f float64) *Value {
	switch {
	case t == Float:
		return &Value{Kind: KindFloat, Type: Float, Float: f}
	case isSigned(t):
		return &Value{Kind: KindInt, Type: t, Int: signed}
	case isUnsigned(t):
		return &Value{Kind: KindUint, Type: t, Uint: unsigned}
	default:
		return &Value{Kind: KindInt, Type: t, Int: signed}
	}
}

// coerce mutates v in place so that it satisfies target, the type a
// variable/constant/parameter/return slot declares. It implements the
// original runtime's assign/push validation: strings and bools only
// accept their own kind; integers reject bool/float/string; widening
// an integer into float is checked by round-trip; narrowing between
// integer widths (including sign changes) is checked by comparing the
// decimal stringification before and after the narrowing, matching
// the "convert, then stringify both ways and compare" range check.
func (i *Interpreter) coerce(name token.Token, target Type, v *Value) bool {
	switch {
	case target == String:
		if v.Kind != KindString {
			i.raise(name, "Cannot assign %s to %s.", v.Type, target)
			return false
		}
		return true

	case target == Bool:
		if v.Kind != KindBool {
			i.raise(name, "Cannot assign %s to %s.", v.Type, target)
			return false
		}
		return true

	case isInteger(target):
		if v.Kind == KindBool || v.Kind == KindFloat || v.Kind == KindString {
			i.raise(name, "Cannot assign %s to %s.", v.Type, target)
			return false
		}
		if v.Kind != KindInt && v.Kind != KindUint {
			i.raise(name, "Cannot assign %s to %s.", v.Type, target)
			return false
		}
		if v.Type == target {
			return true
		}
		signed, unsigned, _, _ := v.ExtractNumber()
		before := v.Stringify()
		candidate := valueForType(target, signed, unsigned, 0)
		after := candidate.Stringify()
		if before != after {
			i.raise(name, "Range error: %s is not in range of type %s.", before, target)
			return false
		}
		*v = *candidate
		return true

	case target == Float:
		if v.Kind == KindBool || v.Kind == KindString {
			i.raise(name, "Cannot assign %s to %s.", v.Type, target)
			return false
		}
		if v.Kind == KindFloat {
			return true
		}
		if v.Kind != KindInt && v.Kind != KindUint {
			i.raise(name, "Cannot assign %s to %s.", v.Type, target)
			return false
		}
		signed, unsigned, f, _ := v.ExtractNumber()
		switch v.Kind {
		case KindInt:
			if int64(f) != signed {
				i.raise(name, "Cannot assign value %d with type %s to %s ( cannot be converted safely ).", signed, v.Type, target)
				return false
			}
		case KindUint:
			if uint64(f) != unsigned {
				i.raise(name, "Cannot assign value %d with type %s to %s ( cannot be converted safely ).", unsigned, v.Type, target)
				return false
			}
		}
		v.Kind, v.Type, v.Float = KindFloat, Float, f
		return true

	default:
		return true
	}
}

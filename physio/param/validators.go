package param

import "math"

// Positive accepts finite numbers > 0, and numeric lists whose elements all are.
func Positive() Validator {
	return numeric(func(f float64) bool { return f > 0 && !math.IsInf(f, 0) })
}

// NonNegative accepts finite numbers >= 0, element-wise for lists.
func NonNegative() Validator {
	return numeric(func(f float64) bool { return f >= 0 && !math.IsInf(f, 0) })
}

// AtLeast accepts numbers >= minimum, element-wise for lists.
func AtLeast(minimum float64) Validator {
	return numeric(func(f float64) bool { return f >= minimum })
}

// Finite accepts numbers and lists free of NaN and Inf.
func Finite() Validator {
	return numeric(func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) })
}

// OneOf accepts strings from a closed set.
func OneOf(options ...string) Validator {
	allowed := make(map[string]struct{}, len(options))
	for _, o := range options {
		allowed[o] = struct{}{}
	}
	return func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, ok = allowed[s]
		return ok
	}
}

// LenBetween accepts lists with minimum <= len <= maximum.
func LenBetween(minimum, maximum int) Validator {
	return func(v any) bool {
		l, ok := v.([]float64)
		return ok && len(l) >= minimum && len(l) <= maximum
	}
}

// All accepts values every validator accepts.
func All(validators ...Validator) Validator {
	return func(v any) bool {
		for _, fn := range validators {
			if fn != nil && !fn(v) {
				return false
			}
		}
		return true
	}
}

// Equals returns an activation predicate that holds when the string
// parameter name resolved to value.
func Equals(name, value string) Activation {
	return func(resolved Values) bool {
		s, ok := resolved[name].(string)
		return ok && s == value
	}
}

// NotEquals returns an activation predicate that holds when the string
// parameter name resolved to anything other than value.
func NotEquals(name, value string) Activation {
	return func(resolved Values) bool {
		s, ok := resolved[name].(string)
		return ok && s != value
	}
}

func numeric(pred func(float64) bool) Validator {
	return func(v any) bool {
		switch x := v.(type) {
		case float64:
			return !math.IsNaN(x) && pred(x)
		case int:
			return pred(float64(x))
		case []float64:
			for _, f := range x {
				if math.IsNaN(f) || !pred(f) {
					return false
				}
			}
			return true
		default:
			return false
		}
	}
}

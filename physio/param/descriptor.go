package param

import (
	"math"
	"reflect"
	"sort"
)

// Level is the requirement level of a parameter.
type Level int

const (
	// Optional parameters fall back to their default silently.
	Optional Level = iota
	// Recommended parameters fall back to their default; callers are
	// encouraged to set them explicitly.
	Recommended
	// Mandatory parameters must be supplied whenever they are active.
	Mandatory
)

func (l Level) String() string {
	switch l {
	case Optional:
		return "optional"
	case Recommended:
		return "recommended"
	case Mandatory:
		return "mandatory"
	default:
		return "unknown"
	}
}

// Kind is an accepted value kind. Resolved values are stored in the kind's
// canonical Go type.
type Kind int

const (
	// Float accepts any Go integer or float; stored as float64.
	Float Kind = iota
	// Int accepts Go integers and integral floats; stored as int.
	Int
	// Bool accepts bool.
	Bool
	// String accepts string and named string types; stored as string.
	String
	// FloatList accepts numeric slices; stored as a fresh []float64.
	FloatList
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case String:
		return "string"
	case FloatList:
		return "[]float"
	default:
		return "unknown"
	}
}

// Validator is a validity predicate over a value already coerced to its
// canonical type.
type Validator func(v any) bool

// Activation decides whether a conditional parameter applies, given the
// parameters resolved so far.
type Activation func(resolved Values) bool

// Descriptor describes one named parameter.
type Descriptor struct {
	Level       Level
	Kinds       []Kind
	Description string
	// Default is substituted when the parameter is absent and not mandatory.
	// A nil default leaves the parameter unconfigured.
	Default    any
	Validator  Validator
	Activation Activation
}

// Conditional reports whether the descriptor has an activation predicate.
func (d Descriptor) Conditional() bool { return d.Activation != nil }

// coerce converts v to the canonical type of the first accepted kind.
func (d Descriptor) coerce(v any) (any, bool) {
	for _, k := range d.Kinds {
		if out, ok := coerceKind(k, v); ok {
			return out, true
		}
	}
	return nil, false
}

// Set is the fixed parameter table of one algorithm.
type Set map[string]Descriptor

// Names returns the parameter names in lexical order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new set holding the descriptors of s and others. Later
// sets win on duplicate names.
func (s Set) Merge(others ...Set) Set {
	out := make(Set, len(s))
	for n, d := range s {
		out[n] = d
	}
	for _, o := range others {
		for n, d := range o {
			out[n] = d
		}
	}
	return out
}

// Doc is the documentation view of one descriptor.
type Doc struct {
	Name        string
	Level       Level
	Kinds       []Kind
	Default     any
	Description string
	Conditional bool
}

// Describe returns documentation rows for every parameter in s, ordered by name.
func Describe(s Set) []Doc {
	docs := make([]Doc, 0, len(s))
	for _, n := range s.Names() {
		d := s[n]
		docs = append(docs, Doc{
			Name:        n,
			Level:       d.Level,
			Kinds:       append([]Kind(nil), d.Kinds...),
			Default:     d.Default,
			Description: d.Description,
			Conditional: d.Conditional(),
		})
	}
	return docs
}

func coerceKind(k Kind, v any) (any, bool) {
	switch k {
	case Float:
		return toFloat(v)
	case Int:
		return toInt(v)
	case Bool:
		b, ok := v.(bool)
		return b, ok
	case String:
		return toString(v)
	case FloatList:
		return toFloatList(v)
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

func toString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func toFloatList(v any) ([]float64, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]float64, rv.Len())
	for i := range out {
		f, ok := toFloat(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

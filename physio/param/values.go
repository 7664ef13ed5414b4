package param

// Values maps parameter names to values. Raw values come from callers;
// resolved values hold canonical types (float64, int, bool, string, []float64).
type Values map[string]any

// Has reports whether name is present.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Float returns a resolved float parameter, or 0.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Int returns a resolved int parameter, or 0.
func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

// Bool returns a resolved bool parameter, or false.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// String returns a resolved string parameter, or "".
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Floats returns a resolved float list, or nil.
func (v Values) Floats(name string) []float64 {
	f, _ := v[name].([]float64)
	return f
}

// Clone returns a shallow copy; float lists are copied.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, x := range v {
		if fl, ok := x.([]float64); ok {
			x = append([]float64(nil), fl...)
		}
		out[k] = x
	}
	return out
}

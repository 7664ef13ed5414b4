package param

import "sort"

// Resolve checks raw against set and returns the resolved mapping for the
// named algorithm.
//
// Unconditional descriptors are resolved first. Conditional descriptors are
// then evaluated against that mapping; an inactive one is left out of the
// result even if it is mandatory and absent.
func Resolve(algorithm string, set Set, raw Values) (Values, error) {
	var unknown []string
	for name := range raw {
		if _, ok := set[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownParameterError{Algorithm: algorithm, Params: unknown}
	}

	resolved := make(Values, len(set))
	names := set.Names()

	for _, name := range names {
		d := set[name]
		if d.Conditional() {
			continue
		}
		if err := resolveOne(algorithm, name, d, raw, resolved); err != nil {
			return nil, err
		}
	}

	for _, name := range names {
		d := set[name]
		if !d.Conditional() {
			continue
		}
		if !d.Activation(resolved) {
			continue
		}
		if err := resolveOne(algorithm, name, d, raw, resolved); err != nil {
			return nil, err
		}
	}

	return resolved, nil
}

// Validate is Resolve without the result.
func Validate(algorithm string, set Set, raw Values) error {
	_, err := Resolve(algorithm, set, raw)
	return err
}

func resolveOne(algorithm, name string, d Descriptor, raw, resolved Values) error {
	v, present := raw[name]
	if !present || v == nil {
		if d.Level == Mandatory {
			return &MissingParameterError{Algorithm: algorithm, Param: name}
		}
		if d.Default != nil {
			def, ok := d.coerce(d.Default)
			if !ok {
				return &TypeMismatchError{Algorithm: algorithm, Param: name, Value: d.Default, Want: d.Kinds}
			}
			resolved[name] = def
		}
		return nil
	}

	cv, ok := d.coerce(v)
	if !ok {
		return &TypeMismatchError{Algorithm: algorithm, Param: name, Value: v, Want: d.Kinds}
	}
	if d.Validator != nil && !d.Validator(cv) {
		return &InvalidValueError{Algorithm: algorithm, Param: name, Value: v}
	}
	resolved[name] = cv
	return nil
}

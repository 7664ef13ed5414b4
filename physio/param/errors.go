package param

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched with errors.Is.
var (
	ErrMissingParameter = errors.New("param: missing mandatory parameter")
	ErrUnknownParameter = errors.New("param: unknown parameter")
	ErrTypeMismatch     = errors.New("param: type mismatch")
	ErrInvalidValue     = errors.New("param: invalid value")
)

// MissingParameterError reports an absent mandatory parameter.
type MissingParameterError struct {
	Algorithm string
	Param     string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: mandatory parameter %q is missing", e.Algorithm, e.Param)
}

func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }

// UnknownParameterError reports keys that no descriptor declares.
type UnknownParameterError struct {
	Algorithm string
	Params    []string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("%s: unknown parameter(s) %s", e.Algorithm, strings.Join(quoteAll(e.Params), ", "))
}

func (e *UnknownParameterError) Unwrap() error { return ErrUnknownParameter }

// TypeMismatchError reports a value whose Go type none of the accepted kinds admits.
type TypeMismatchError struct {
	Algorithm string
	Param     string
	Value     any
	Want      []Kind
}

func (e *TypeMismatchError) Error() string {
	want := make([]string, len(e.Want))
	for i, k := range e.Want {
		want[i] = k.String()
	}
	return fmt.Sprintf("%s: parameter %q got %T (%v), want %s",
		e.Algorithm, e.Param, e.Value, e.Value, strings.Join(want, " or "))
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// InvalidValueError reports a value rejected by the descriptor's validator.
type InvalidValueError struct {
	Algorithm string
	Param     string
	Value     any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %v for parameter %q", e.Algorithm, e.Value, e.Param)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}

package enumjen

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"
)

// Checker validates the arguments of a conversion before any work is done.
//
// Implementations must be stateless. Every violation is reported as an error
// wrapping [ErrArgument] or [ErrTypeMismatch].
type Checker interface {
	// CheckDefined fails if any of values is undefined. names[i] is used to
	// identify values[i] in the error.
	CheckDefined(values []any, names []string) error

	// CheckType fails if value is not of the wanted kind.
	CheckType(value any, name string, want reflect.Kind) error

	// CheckTypes is CheckType applied to every element of values.
	CheckTypes(values []any, names []string, want reflect.Kind) error

	// CheckIsSlice fails if value is not a slice or array.
	CheckIsSlice(value any, name string) error
}

// Preconditions is the default [Checker].
//
// A value is undefined if it is a nil interface, a nil pointer, map, slice,
// func or chan, or an empty string.
type Preconditions struct{}

var _ Checker = Preconditions{}

func (Preconditions) CheckDefined(values []any, names []string) error {
	var result *multierror.Error
	for i, v := range values {
		if isUndefined(v) {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrArgument, argName(names, i)))
		}
	}
	return result.ErrorOrNil()
}

func (Preconditions) CheckType(value any, name string, want reflect.Kind) error {
	if value == nil {
		return fmt.Errorf("%w: %s must be %s, got nil", ErrTypeMismatch, name, want)
	}
	if got := reflect.TypeOf(value).Kind(); got != want {
		return fmt.Errorf("%w: %s must be %s, got %T", ErrTypeMismatch, name, want, value)
	}
	return nil
}

func (p Preconditions) CheckTypes(values []any, names []string, want reflect.Kind) error {
	var result *multierror.Error
	for i, v := range values {
		if err := p.CheckType(v, argName(names, i), want); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (Preconditions) CheckIsSlice(value any, name string) error {
	if value != nil {
		switch reflect.TypeOf(value).Kind() {
		case reflect.Slice, reflect.Array:
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be a list, got %T", ErrTypeMismatch, name, value)
}

func isUndefined(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func argName(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("argument %d", i)
}

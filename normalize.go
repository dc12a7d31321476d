package enumjen

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// Field is one key/value pair of an [Object].
type Field struct {
	Key   string
	Value any
}

// Object is an ordered keyed collection. Its fields become enum entries in
// the order they appear.
type Object []Field

// ObjectFromMap returns an Object holding the entries of m, sorted by key.
func ObjectFromMap[V any](m map[string]V) Object {
	obj := make(Object, 0, len(m))
	for k, v := range m {
		obj = append(obj, Field{Key: k, Value: v})
	}
	slices.SortFunc(obj, func(a, b Field) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return obj
}

// ObjectEntries converts obj to entries named by key, valued by the field
// value rendered as text.
//
// Strings, numbers and booleans are accepted. Any other value fails with
// [ErrTypeConversion].
func ObjectEntries(obj Object) ([]Entry, error) {
	entries := make([]Entry, 0, len(obj))
	for _, f := range obj {
		s, err := literal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", f.Key, err)
		}
		entries = append(entries, Entry{Name: f.Key, Value: s})
	}
	return entries, nil
}

// ListEntries converts values to entries whose name and value are both the
// element itself.
func ListEntries(values []string) []Entry {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Name: v, Value: v}
	}
	return entries
}

func literal(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), nil
	}
	return "", fmt.Errorf("%w: %T is not a string or number", ErrTypeConversion, v)
}

// listOf turns a dynamic list into strings. Non-string elements fail with
// ErrTypeConversion.
func listOf(chk Checker, v any) ([]string, error) {
	if err := chk.CheckIsSlice(v, "array"); err != nil {
		return nil, err
	}
	if ss, ok := v.([]string); ok {
		return ss, nil
	}

	rv := reflect.ValueOf(v)
	out := make([]string, rv.Len())
	for i := range out {
		el := rv.Index(i).Interface()
		s, ok := el.(string)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T, not a string", ErrTypeConversion, i, el)
		}
		out[i] = s
	}
	return out, nil
}

// objectOf turns a dynamic keyed collection into an Object.
func objectOf(chk Checker, v any) (Object, error) {
	if obj, ok := v.(Object); ok {
		return obj, nil
	}
	if err := chk.CheckType(v, "object", reflect.Map); err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(v)
	if rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: object keys must be strings, got %s", ErrTypeMismatch, rv.Type().Key())
	}
	obj := make(Object, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		obj = append(obj, Field{Key: iter.Key().String(), Value: iter.Value().Interface()})
	}
	slices.SortFunc(obj, func(a, b Field) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return obj, nil
}

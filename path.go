package lookup

import (
	"math"
	"reflect"
	"strings"
)

// Path is an ordered sequence of keys identifying a nested property.
type Path []string

// ParsePath splits a dotted path ("a.b.c") into its key sequence. Empty
// segments are dropped so "a..b" and ".a.b." both parse to ["a" "b"].
func ParsePath(raw string) Path {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ".")
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		path = append(path, part)
	}
	if len(path) == 0 {
		return nil
	}
	return path
}

// String renders the path in dotted form.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Resolve folds path over value by successive key lookup. Resolution
// short-circuits to nil as soon as an intermediate value is falsy, so nil,
// zero, and empty-string intermediates cut the walk short the same way a
// missing key does.
func Resolve(value any, path Path) any {
	current := value
	for _, key := range path {
		if !Truthy(current) {
			return nil
		}
		current = lookupKey(current, key)
	}
	return current
}

// Truthy reports whether value is non-falsy under dynamic-language rules:
// nil, false, numeric zero, NaN, and the empty string are falsy. Non-nil
// maps, slices, and structs are truthy even when empty; nil maps, slices,
// pointers, and interfaces are falsy.
func Truthy(value any) bool {
	if value == nil {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0 && !math.IsNaN(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return !rv.IsNil()
	}
	return true
}

// lookupKey reads one property off value. Maps with string-convertible keys
// and exported struct fields are supported; anything else yields nil.
func lookupKey(value any, key string) any {
	if value == nil {
		return nil
	}
	if m, ok := value.(map[string]any); ok {
		return m[key]
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		entry := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !entry.IsValid() {
			return nil
		}
		return entry.Interface()
	case reflect.Struct:
		return lookupField(rv, key)
	}
	return nil
}

func lookupField(rv reflect.Value, key string) any {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Name == key || fieldTagName(field) == key || strings.EqualFold(field.Name, key) {
			return rv.Field(i).Interface()
		}
	}
	return nil
}

func fieldTagName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}

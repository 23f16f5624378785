// Package rawjson reads fields out of loosely typed upstream JSON documents and
// reports missing or mistyped fields by name.
package rawjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"
)

// Object is a decoded JSON object. Numbers are held as json.Number.
type Object map[string]any

// Decode parses body into an Object. The top-level value must be an object.
func Decode(body []byte) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected trailing data after top-level object")
	}
	if doc == nil {
		return nil, fmt.Errorf("top-level value is null")
	}
	return Object(doc), nil
}

// AsObject converts an arbitrary decoded value into an Object. field names the value in errors.
func AsObject(value any, field string) (Object, error) {
	switch v := value.(type) {
	case Object:
		return v, nil
	case map[string]any:
		return Object(v), nil
	default:
		return nil, wrongType(field, "an object", value)
	}
}

// Has reports whether name is present and not null.
func (o Object) Has(name string) bool {
	v, ok := o[name]
	return ok && v != nil
}

func (o Object) lookup(name string) (any, error) {
	v, ok := o[name]
	if !ok {
		return nil, missing(name)
	}
	return v, nil
}

// Object returns the nested object stored under name.
func (o Object) Object(name string) (Object, error) {
	v, err := o.lookup(name)
	if err != nil {
		return nil, err
	}
	return AsObject(v, name)
}

// Array returns the array stored under name.
func (o Object) Array(name string) ([]any, error) {
	v, err := o.lookup(name)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, wrongType(name, "an array", v)
	}
	return arr, nil
}

// Objects returns the array stored under name, requiring every element to be an object.
func (o Object) Objects(name string) ([]Object, error) {
	arr, err := o.Array(name)
	if err != nil {
		return nil, err
	}
	out := make([]Object, 0, len(arr))
	for i, item := range arr {
		obj, err := AsObject(item, fmt.Sprintf("%s[%d]", name, i))
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

// String returns the string stored under name.
func (o Object) String(name string) (string, error) {
	v, err := o.lookup(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(name, "a string", v)
	}
	return s, nil
}

// Bool returns the boolean stored under name.
func (o Object) Bool(name string) (bool, error) {
	v, err := o.lookup(name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, wrongType(name, "a bool", v)
	}
	return b, nil
}

// Uint returns the unsigned integer stored natively (not as a string) under name.
func (o Object) Uint(name string) (uint64, error) {
	v, err := o.lookup(name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case json.Number:
		parsed, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return 0, wrongType(name, "an unsigned integer", v)
		}
		return parsed, nil
	case float64:
		if n < 0 || n != math.Trunc(n) || n > math.MaxUint64 {
			return 0, wrongType(name, "an unsigned integer", v)
		}
		return uint64(n), nil
	case int:
		if n < 0 {
			return 0, wrongType(name, "an unsigned integer", v)
		}
		return uint64(n), nil
	case uint64:
		return n, nil
	default:
		return 0, wrongType(name, "an unsigned integer", v)
	}
}

// UintString returns the unsigned integer encoded as a decimal string under name.
func (o Object) UintString(name string) (uint64, error) {
	s, err := o.String(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &IntegerParseError{Field: name, Value: s, Err: err}
	}
	return n, nil
}

// UintOrString accepts either a native unsigned integer or a decimal string.
func (o Object) UintOrString(name string) (uint64, error) {
	if n, err := o.Uint(name); err == nil {
		return n, nil
	}
	return o.UintString(name)
}

// Time parses the string under name with layout and returns it in UTC.
func (o Object) Time(name, layout string) (time.Time, error) {
	s, err := o.String(name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, &TimeParseError{Field: name, Value: s, Layout: layout, Err: err}
	}
	return t.UTC(), nil
}

// StringOr returns the string under name, or def when it is missing or not a string.
func (o Object) StringOr(name, def string) string {
	if s, err := o.String(name); err == nil {
		return s
	}
	return def
}

// BoolOr returns the boolean under name, or def when it is missing or not a bool.
func (o Object) BoolOr(name string, def bool) bool {
	if b, err := o.Bool(name); err == nil {
		return b
	}
	return def
}

// UintOr returns the native unsigned integer under name, or def on any failure.
func (o Object) UintOr(name string, def uint64) uint64 {
	if n, err := o.Uint(name); err == nil {
		return n
	}
	return def
}

// Package merge overlays partial JSON documents onto typed defaults.
//
// The Go type of the defaults is the schema: objects recurse field by field,
// arrays replace the default wholesale, scalars replace the default, and keys
// that are absent or null keep the default. Override keys unknown to the schema
// are ignored.
package merge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrNotObject is returned when the override does not decode as a JSON object.
var ErrNotObject = errors.New("merge: override is not a JSON object")

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// Issue reports an override value that could not be applied. The default is
// kept at Path.
type Issue struct {
	Path string
	Err  error
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %v", i.Path, i.Err)
}

// Overlay returns defaults with raw laid over it. On error the returned value
// is still a copy of defaults, so callers can fall back to it directly.
func Overlay[T any](defaults T, raw []byte) (T, []Issue, error) {
	result := clone(defaults)

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return result, nil, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return result, nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}

	rv := reflect.ValueOf(&result).Elem()
	if rv.Kind() != reflect.Struct {
		// Non-struct schemas have nothing to recurse into; the override wins.
		var out T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return result, nil, err
		}
		return out, nil, nil
	}

	issues := overlayStruct(rv, obj, "")
	return result, issues, nil
}

// Apply overlays a typed override onto defaults. Zero values tagged omitempty
// are treated as absent.
func Apply[T any](defaults, override T) (T, error) {
	raw, err := json.Marshal(override)
	if err != nil {
		return clone(defaults), err
	}
	merged, _, err := Overlay(defaults, raw)
	return merged, err
}

func overlayStruct(dst reflect.Value, obj map[string]json.RawMessage, path string) []Issue {
	var issues []Issue
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, tagged := fieldName(f)
		if name == "-" {
			continue
		}
		fv := dst.Field(i)

		// Untagged embedded structs are flattened into the parent object,
		// the same way encoding/json promotes their fields.
		if f.Anonymous && !tagged && f.Type.Kind() == reflect.Struct {
			issues = append(issues, overlayStruct(fv, obj, path)...)
			continue
		}
		if !f.IsExported() {
			continue
		}

		msg, ok := obj[name]
		if !ok || isNull(msg) {
			continue
		}
		p := joinPath(path, name)

		if fv.Kind() == reflect.Struct && !reflect.PointerTo(fv.Type()).Implements(unmarshalerType) {
			var sub map[string]json.RawMessage
			if err := json.Unmarshal(msg, &sub); err != nil {
				issues = append(issues, Issue{Path: p, Err: fmt.Errorf("expected object: %w", err)})
				continue
			}
			issues = append(issues, overlayStruct(fv, sub, p)...)
			continue
		}

		nv := reflect.New(fv.Type())
		if err := json.Unmarshal(msg, nv.Interface()); err != nil {
			issues = append(issues, Issue{Path: p, Err: err})
			continue
		}
		fv.Set(nv.Elem())
	}
	return issues
}

func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return f.Name, false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name, false
	}
	return name, true
}

func isNull(msg json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

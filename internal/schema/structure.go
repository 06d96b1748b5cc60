package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// jsonChecker is implemented by leaf types that accept more than a single
// JSON kind, such as dates and amounts.
type jsonChecker interface {
	CheckJSON(raw any) error
}

var jsonCheckerType = reflect.TypeOf((*jsonChecker)(nil)).Elem()

// fieldRules are the presence rules of a struct field. A field is required
// unless its json tag has omitempty, and accepts null only when tagged
// schema:"nullable". schema:"default" allows both absence and null.
type fieldRules struct {
	name       string
	optional   bool
	nullable   bool
	hasDefault bool
}

func rulesFor(field reflect.StructField) (fieldRules, bool) {
	name, opts, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return fieldRules{}, false
	}
	if name == "" {
		name = field.Name
	}
	rules := fieldRules{name: name}
	for _, opt := range strings.Split(opts, ",") {
		if opt == "omitempty" {
			rules.optional = true
		}
	}
	for _, opt := range strings.Split(field.Tag.Get("schema"), ",") {
		switch opt {
		case "nullable":
			rules.nullable = true
		case "default":
			rules.optional = true
			rules.nullable = true
			rules.hasDefault = true
		}
	}
	return rules, true
}

// decodeRaw decodes data into plain maps, slices and json.Number values.
func decodeRaw(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return raw, nil
}

// structureWalker checks a decoded JSON value against a Go type: required
// keys, nulls, JSON kinds and leaf formats. It records every problem it
// finds instead of stopping at the first.
type structureWalker struct {
	issues []Issue
}

func checkStructure(t reflect.Type, raw any) []Issue {
	w := &structureWalker{}
	if raw == nil {
		if t.Kind() != reflect.Pointer {
			w.null("", t)
		}
		return w.issues
	}
	w.value(t, raw, "")
	return w.issues
}

func (w *structureWalker) add(path, code, message string) {
	w.issues = append(w.issues, Issue{Path: path, Code: code, Message: message})
}

func (w *structureWalker) mismatch(path string, t reflect.Type, raw any) {
	w.add(path, CodeInvalidType, fmt.Sprintf("expected %s, received %s", expectedKind(t), receivedKind(raw)))
}

func (w *structureWalker) null(path string, t reflect.Type) {
	w.add(path, CodeInvalidType, fmt.Sprintf("expected %s, received null", expectedKind(t)))
}

func (w *structureWalker) value(t reflect.Type, raw any, path string) {
	if checker, ok := leafChecker(t); ok {
		if err := checker.CheckJSON(raw); err != nil {
			w.add(path, CodeInvalidType, err.Error())
		}
		return
	}

	switch t.Kind() {
	case reflect.Pointer:
		w.value(t.Elem(), raw, path)
	case reflect.Struct:
		obj, ok := raw.(map[string]any)
		if !ok {
			w.mismatch(path, t, raw)
			return
		}
		w.object(t, obj, path)
	case reflect.Slice, reflect.Array:
		arr, ok := raw.([]any)
		if !ok {
			w.mismatch(path, t, raw)
			return
		}
		for i, elem := range arr {
			elemPath := path + "[" + strconv.Itoa(i) + "]"
			if elem == nil {
				w.null(elemPath, t.Elem())
				continue
			}
			w.value(t.Elem(), elem, elemPath)
		}
	case reflect.Map:
		obj, ok := raw.(map[string]any)
		if !ok {
			w.mismatch(path, t, raw)
			return
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			elemPath := path + "[" + k + "]"
			if obj[k] == nil {
				w.null(elemPath, t.Elem())
				continue
			}
			w.value(t.Elem(), obj[k], elemPath)
		}
	case reflect.String:
		if _, ok := raw.(string); !ok {
			w.mismatch(path, t, raw)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := raw.(json.Number)
		if !ok {
			w.mismatch(path, t, raw)
			return
		}
		if _, err := n.Int64(); err != nil {
			w.add(path, CodeInvalidType, fmt.Sprintf("expected integer, received %s", n))
		}
	case reflect.Float32, reflect.Float64:
		if _, ok := raw.(json.Number); !ok {
			w.mismatch(path, t, raw)
		}
	case reflect.Bool:
		if _, ok := raw.(bool); !ok {
			w.mismatch(path, t, raw)
		}
	}
}

func (w *structureWalker) object(t reflect.Type, obj map[string]any, path string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct && field.Tag.Get("json") == "" {
			w.object(field.Type, obj, path)
			continue
		}
		if !field.IsExported() {
			continue
		}
		rules, ok := rulesFor(field)
		if !ok {
			continue
		}

		fieldPath := rules.name
		if path != "" {
			fieldPath = path + "." + rules.name
		}
		raw, present := obj[rules.name]
		switch {
		case !present:
			if !rules.optional {
				w.add(fieldPath, CodeRequired, "Required")
			}
		case raw == nil:
			if !rules.nullable {
				w.null(fieldPath, field.Type)
			}
		default:
			w.value(field.Type, raw, fieldPath)
		}
	}
}

func leafChecker(t reflect.Type) (jsonChecker, bool) {
	if t.Kind() == reflect.Pointer {
		return nil, false
	}
	if t.Implements(jsonCheckerType) {
		return reflect.Zero(t).Interface().(jsonChecker), true
	}
	if reflect.PointerTo(t).Implements(jsonCheckerType) {
		return reflect.New(t).Interface().(jsonChecker), true
	}
	return nil, false
}

func expectedKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if _, ok := leafChecker(t); ok {
		return strings.ToLower(t.Name())
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	}
	return t.String()
}

func receivedKind(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", raw)
}

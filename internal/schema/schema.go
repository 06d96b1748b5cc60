// Package schema validates untrusted JSON values against the record shapes
// of the models package and returns the typed record or every violated
// constraint with its field path.
package schema

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	appvalidator "stockfolio/internal/validator"
)

// Schema is the type-erased view of a Shape used by the registry.
type Schema interface {
	Name() string
	Check(data []byte) (any, error)
}

// Shape validates JSON values of the record type T.
type Shape[T any] struct {
	name string
	tag  string
}

// Option configures a Shape.
type Option func(*shapeOptions)

type shapeOptions struct {
	tag string
}

// WithTag validates a non-struct value with the given validator tag.
func WithTag(tag string) Option {
	return func(o *shapeOptions) {
		o.tag = tag
	}
}

// Define declares a shape named name for the type T.
func Define[T any](name string, opts ...Option) *Shape[T] {
	var o shapeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Shape[T]{name: name, tag: o.tag}
}

// Name returns the shape name.
func (s *Shape[T]) Name() string {
	return s.name
}

// Parse validates data and returns the typed record. Absent or null default
// fields are filled in. On failure the error is a *ValidationError holding
// every issue found.
func (s *Shape[T]) Parse(data []byte) (T, error) {
	var zero T

	raw, err := decodeRaw(data)
	if err != nil {
		return zero, s.fail(Issue{Code: CodeInvalidJSON, Message: err.Error()})
	}

	typ := reflect.TypeOf((*T)(nil)).Elem()
	issues := checkStructure(typ, raw)

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		if len(issues) == 0 {
			issues = append(issues, Issue{Code: CodeInvalidType, Message: err.Error()})
		}
		return zero, s.fail(issues...)
	}
	applyDefaults(reflect.ValueOf(&out).Elem())

	issues = mergeIssues(issues, s.constraintIssues(out))
	if len(issues) > 0 {
		return zero, s.fail(issues...)
	}
	return out, nil
}

// ParseValue validates an in-memory value by way of its JSON encoding.
func (s *Shape[T]) ParseValue(value any) (T, error) {
	data, err := json.Marshal(value)
	if err != nil {
		var zero T
		return zero, s.fail(Issue{Code: CodeInvalidJSON, Message: err.Error()})
	}
	return s.Parse(data)
}

// Check implements Schema.
func (s *Shape[T]) Check(data []byte) (any, error) {
	return s.Parse(data)
}

func (s *Shape[T]) fail(issues ...Issue) error {
	return &ValidationError{Shape: s.name, Issues: issues}
}

func (s *Shape[T]) constraintIssues(value T) []Issue {
	v := appvalidator.Get()
	rv := reflect.ValueOf(value)

	var err error
	rooted := false
	switch {
	case s.tag != "":
		err = v.Var(value, s.tag)
	case !rv.IsValid():
		return nil
	case rv.Kind() == reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		if rv.Elem().Kind() == reflect.Struct {
			rooted = true
			err = v.Struct(value)
		}
	case rv.Kind() == reflect.Struct:
		rooted = true
		err = v.Struct(value)
	case rv.Kind() == reflect.Slice, rv.Kind() == reflect.Map:
		err = v.Var(value, "dive")
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Issue{{Code: CodeInvalidType, Message: err.Error()}}
	}
	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, constraintIssue(issuePath(fe.Namespace(), rooted), fe))
	}
	return issues
}

// issuePath turns a validator namespace into a field path. The leading
// struct name is dropped for struct shapes, as are embedded struct segments.
func issuePath(namespace string, rooted bool) string {
	if rooted {
		if _, rest, ok := strings.Cut(namespace, "."); ok {
			namespace = rest
		} else {
			namespace = ""
		}
	}
	namespace = strings.ReplaceAll(namespace, appvalidator.EmbeddedName+".", "")
	return strings.TrimPrefix(namespace, ".")
}

// mergeIssues appends the constraint issues that do not concern a path the
// structural pass already rejected.
func mergeIssues(structural, constraints []Issue) []Issue {
	merged := structural
	for _, c := range constraints {
		if coveredBy(c.Path, structural) {
			continue
		}
		merged = append(merged, c)
	}
	return merged
}

func coveredBy(path string, issues []Issue) bool {
	for _, issue := range issues {
		if issue.Path == "" || path == issue.Path ||
			strings.HasPrefix(path, issue.Path+".") ||
			strings.HasPrefix(path, issue.Path+"[") {
			return true
		}
	}
	return false
}

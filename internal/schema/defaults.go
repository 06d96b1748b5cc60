package schema

import (
	"reflect"
)

// applyDefaults replaces nil slices on fields tagged schema:"default" with
// empty ones, so that an absent or null list is emitted as []. v must be
// addressable.
func applyDefaults(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			applyDefaults(v.Elem())
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fv := v.Field(i)
			if rules, ok := rulesFor(field); ok && rules.hasDefault && fv.Kind() == reflect.Slice && fv.IsNil() {
				fv.Set(reflect.MakeSlice(fv.Type(), 0, 0))
			}
			applyDefaults(fv)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			applyDefaults(v.Index(i))
		}
	case reflect.Map:
		if v.IsNil() {
			return
		}
		for _, key := range v.MapKeys() {
			elem := reflect.New(v.Type().Elem()).Elem()
			elem.Set(v.MapIndex(key))
			applyDefaults(elem)
			v.SetMapIndex(key, elem)
		}
	}
}

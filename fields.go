package gridlet

import (
	"reflect"
	"strings"
	"sync"

	nt "gridlet/entity"
)

// Rows are opaque to the grid except for field access by column key.
// Struct rows resolve a key against the `grid` tag, the exported field
// name, or a case-insensitive name match, in that order. Map rows with
// string keys look the key up directly. Anything else, and any miss,
// yields a nil Value rendering as an empty cell.

// fieldPlans caches per-type field lookup tables.
var fieldPlans sync.Map

// fieldValue resolves a row's value for a column key.
func fieldValue[T any](row T, key string) nt.Value {

	if rec, ok := any(row).(nt.Record); ok {
		return nt.Value{Raw: rec[key]}
	}

	rv := reflect.ValueOf(row)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nt.Value{}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nt.Value{}
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nt.Value{}
		}
		return nt.Value{Raw: mv.Interface()}

	case reflect.Struct:
		idx, ok := planFor(rv.Type())[strings.ToLower(key)]
		if !ok {
			return nt.Value{}
		}
		return nt.Value{Raw: rv.Field(idx).Interface()}
	}

	return nt.Value{}
}

// unexported

// planFor maps lowered field keys to field indices for a struct type.
func planFor(typ reflect.Type) map[string]int {

	cached, ok := fieldPlans.Load(typ)
	if ok {
		return cached.(map[string]int)
	}

	plan := map[string]int{}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name := strings.ToLower(field.Name)
		if tag, ok := field.Tag.Lookup("grid"); ok && tag != "" {
			name = strings.ToLower(tag)
		}

		// first declaration wins on collision
		if _, taken := plan[name]; !taken {
			plan[name] = i
		}
	}

	fieldPlans.Store(typ, plan)
	return plan
}

package structural

import (
	"reflect"
	"regexp"
	"time"

	"github.com/rickb777/date/v2"
)

var (
	timeType   = reflect.TypeOf(time.Time{})
	dateType   = reflect.TypeOf(date.Date(0))
	regexpType = reflect.TypeOf((*regexp.Regexp)(nil))
)

// visit identifies one mutable container during a single clone call.
// Pointer alone is not enough: a struct and its first field share an
// address, and two slice views over one array share a base pointer. Only
// identical headers alias, so slices carry their length in the key.
type visit struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// Clone returns a structural copy of v. The copy shares no mutable
// containers with the original, except where the original graph itself
// shares a reference; such aliasing (including cycles) is reproduced in the
// copy rather than expanded. Dates and times clone to the same instant,
// regular expressions to a recompiled pattern with identical flags.
func Clone(v any) any {
	if v == nil {
		return nil
	}
	seen := make(map[visit]reflect.Value)
	return cloneValue(reflect.ValueOf(v), seen).Interface()
}

// CloneOf is the typed variant of Clone.
func CloneOf[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	seen := make(map[visit]reflect.Value)
	rv.Set(cloneValue(rv, seen))
	return v
}

func cloneValue(v reflect.Value, seen map[visit]reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}

	switch v.Type() {
	case timeType, dateType:
		// immutable instants, copied by value
		return v
	case regexpType:
		if v.IsNil() {
			return v
		}
		re := v.Interface().(*regexp.Regexp)
		return reflect.ValueOf(regexp.MustCompile(re.String()))
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if c, ok := seen[key]; ok {
			return c
		}
		c := reflect.New(v.Type().Elem())
		// register before recursing so cycles resolve to the new pointer
		seen[key] = c
		c.Elem().Set(cloneValue(v.Elem(), seen))
		return c

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if c, ok := seen[key]; ok {
			return c
		}
		c := reflect.MakeMapWithSize(v.Type(), v.Len())
		seen[key] = c
		for iter := v.MapRange(); iter.Next(); {
			c.SetMapIndex(iter.Key(), cloneValue(iter.Value(), seen))
		}
		return c

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		key := visit{ptr: v.Pointer(), len: v.Len(), typ: v.Type()}
		if c, ok := seen[key]; ok {
			return c
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		seen[key] = c
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(cloneValue(v.Index(i), seen))
		}
		return c

	case reflect.Array:
		c := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(cloneValue(v.Index(i), seen))
		}
		return c

	case reflect.Struct:
		t := v.Type()
		c := reflect.New(t).Elem()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			c.Field(i).Set(cloneValue(v.Field(i), seen))
		}
		return c

	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		c := reflect.New(v.Type()).Elem()
		c.Set(cloneValue(v.Elem(), seen))
		return c

	default:
		// primitives, chans, funcs: no copy needed or possible
		return v
	}
}

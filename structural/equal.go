package structural

import (
	"reflect"
	"regexp"
	"time"

	"github.com/rickb777/date/v2"
)

// Equal reports whether a and b are deeply equal by value: both nil, or the
// same concrete dynamic type with recursively equal exported structure.
// Times and dates compare by instant, regular expressions by their canonical
// string form (pattern plus flags). Map keys compare as an unordered set,
// slices element-wise in order. Two values of different concrete types are
// never equal, even when field-for-field identical.
//
// Equal keeps no visited set: comparing cyclic values recurses without
// bound. Cycle handling lives in Clone only, where the visited map also
// serves alias preservation; callers of Equal own acyclicity.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return equalValue(va, vb)
}

func equalValue(a, b reflect.Value) bool {
	switch a.Type() {
	case timeType:
		return a.Interface().(time.Time).Equal(b.Interface().(time.Time))
	case dateType:
		return a.Interface().(date.Date) == b.Interface().(date.Date)
	case regexpType:
		ra := a.Interface().(*regexp.Regexp)
		rb := b.Interface().(*regexp.Regexp)
		if ra == nil || rb == nil {
			return ra == rb
		}
		return ra.String() == rb.String()
	}

	switch a.Kind() {
	case reflect.Pointer:
		if a.Pointer() == b.Pointer() {
			return true
		}
		if a.IsNil() || b.IsNil() {
			return false
		}
		return equalValue(a.Elem(), b.Elem())

	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		if ea.Type() != eb.Type() {
			return false
		}
		return equalValue(ea, eb)

	case reflect.Slice:
		if a.IsNil() != b.IsNil() {
			return false
		}
		if a.Len() != b.Len() {
			return false
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true

	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true

	case reflect.Map:
		if a.IsNil() != b.IsNil() {
			return false
		}
		if a.Len() != b.Len() {
			return false
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		for iter := a.MapRange(); iter.Next(); {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !equalValue(iter.Value(), bv) {
				return false
			}
		}
		return true

	case reflect.Struct:
		t := a.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true

	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		// capability values compare by identity
		return a.Pointer() == b.Pointer()

	default:
		return a.Interface() == b.Interface()
	}
}

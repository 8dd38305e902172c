package pure

import "reflect"

// Flatten fully unnests seq: every element that is itself a slice or array
// is expanded recursively, in left-to-right depth-first order, and every
// other element is kept as is. Empty nested sequences contribute nothing.
// There is no depth limit; pathologically deep nesting exhausts the stack.
// Strings are atoms, not sequences.
func Flatten(seq []any) []any {
	flat := make([]any, 0, len(seq))
	for _, el := range seq {
		flat = appendFlattened(flat, el)
	}
	return flat
}

func appendFlattened(flat []any, el any) []any {
	v := reflect.ValueOf(el)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			flat = appendFlattened(flat, v.Index(i).Interface())
		}
		return flat
	default:
		return append(flat, el)
	}
}

// FlattenSlices is the typed single-level variant for homogeneous nesting.
func FlattenSlices[T any](nested [][]T) []T {
	flat := make([]T, 0, len(nested))
	for _, inner := range nested {
		flat = append(flat, inner...)
	}
	return flat
}

package fn

import (
	"fmt"
	"reflect"
)

// Curry2 turns a binary function into its fully-curried form.
func Curry2[I1, I2, O1 any](fn func(I1, I2) O1) func(I1) func(I2) O1 {
	return func(i1 I1) func(I2) O1 {
		return func(i2 I2) O1 {
			return fn(i1, i2)
		}
	}
}

// Curry3 turns a ternary function into its fully-curried form.
func Curry3[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1) func(I1) func(I2) func(I3) O1 {
	return func(i1 I1) func(I2) func(I3) O1 {
		return func(i2 I2) func(I3) O1 {
			return func(i3 I3) O1 {
				return fn(i1, i2, i3)
			}
		}
	}
}

// Curry4 turns a quaternary function into its fully-curried form.
func Curry4[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) O1) func(I1) func(I2) func(I3) func(I4) O1 {
	return func(i1 I1) func(I2) func(I3) func(I4) O1 {
		return func(i2 I2) func(I3) func(I4) O1 {
			return func(i3 I3) func(I4) O1 {
				return func(i4 I4) O1 {
					return fn(i1, i2, i3, i4)
				}
			}
		}
	}
}

// ErrNotAFunction reports a CurryFn argument that is not a usable function.
var ErrNotAFunction = fmt.Errorf("curry: not a fixed-arity function")

// PartialFn carries a function together with the arguments accumulated so
// far. The accumulated list is immutable: Call copies it, so one partial can
// be completed many times independently.
type PartialFn struct {
	fn          reflect.Value
	arity       int
	accumulated []reflect.Value
}

// CurryFn wraps a fixed-arity function for incremental application. It
// panics if fn is not a function or is variadic (variadic functions have no
// declared arity to reach).
func CurryFn(fn any) *PartialFn {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		panic(fmt.Errorf("%w: %T", ErrNotAFunction, fn))
	}
	if v.Type().IsVariadic() {
		panic(fmt.Errorf("%w: variadic %s", ErrNotAFunction, v.Type()))
	}
	return &PartialFn{fn: v, arity: v.Type().NumIn()}
}

// Remaining reports how many more arguments complete the application.
func (p *PartialFn) Remaining() int {
	return p.arity - len(p.accumulated)
}

// Call appends args to the accumulated list. If the list now reaches the
// function's declared arity it invokes the function with the first arity
// accumulated arguments (surplus ones are dropped) and returns its first
// result, or nil for a void function. Otherwise it returns a new *PartialFn
// holding the enlarged list; the receiver is untouched and reusable.
func (p *PartialFn) Call(args ...any) any {
	accumulated := make([]reflect.Value, len(p.accumulated), len(p.accumulated)+len(args))
	copy(accumulated, p.accumulated)
	for _, arg := range args {
		rv := reflect.ValueOf(arg)
		if !rv.IsValid() {
			// untyped nil: substitute the zero value of the parameter slot,
			// when that slot exists
			if pos := len(accumulated); pos < p.arity {
				rv = reflect.Zero(p.fn.Type().In(pos))
			} else {
				rv = reflect.Zero(reflect.TypeOf((*any)(nil)).Elem())
			}
		}
		accumulated = append(accumulated, rv)
	}

	if len(accumulated) < p.arity {
		return &PartialFn{fn: p.fn, arity: p.arity, accumulated: accumulated}
	}

	out := p.fn.Call(accumulated[:p.arity])
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

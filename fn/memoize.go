package fn

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// ErrUnserializableArgs reports an argument list that could not be turned
// into a cache key. Callers must supply serializable, acyclic arguments;
// two argument lists that serialize identically are one key even when they
// are not reference-equal.
var ErrUnserializableArgs = fmt.Errorf("memoize: arguments are not serializable")

// MemoizeI1O1 memoizes a unary function. The first call with a given
// argument computes and stores the result; later calls with an argument
// that serializes to the same key return the stored result without invoking
// fn again, even if fn is non-deterministic or has side effects.
func MemoizeI1O1[I1, O1 any](fn func(I1) O1, opts ...Option) func(I1) O1 {
	memoized := memoize(
		func(args ...any) any {
			return fn(args[0].(I1))
		},
		opts,
	)
	return func(i1 I1) O1 {
		return memoized(i1).(O1)
	}
}

// MemoizeI2O1 memoizes a binary function.
func MemoizeI2O1[I1, I2, O1 any](fn func(I1, I2) O1, opts ...Option) func(I1, I2) O1 {
	memoized := memoize(
		func(args ...any) any {
			return fn(args[0].(I1), args[1].(I2))
		},
		opts,
	)
	return func(i1 I1, i2 I2) O1 {
		return memoized(i1, i2).(O1)
	}
}

// MemoizeI3O1 memoizes a ternary function.
func MemoizeI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1, opts ...Option) func(I1, I2, I3) O1 {
	memoized := memoize(
		func(args ...any) any {
			return fn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return memoized(i1, i2, i3).(O1)
	}
}

type pair[O1, O2 any] struct {
	O1 O1
	O2 O2
}

// MemoizeI1O2 memoizes a unary function with two results.
func MemoizeI1O2[I1, O1, O2 any](fn func(I1) (O1, O2), opts ...Option) func(I1) (O1, O2) {
	memoized := memoize(
		func(args ...any) any {
			v1, v2 := fn(args[0].(I1))
			return pair[O1, O2]{O1: v1, O2: v2}
		},
		opts,
	)
	return func(i1 I1) (O1, O2) {
		res := memoized(i1).(pair[O1, O2])
		return res.O1, res.O2
	}
}

func memoize(fn func(...any) any, opts []Option) func(...any) any {
	conf := newConfig(opts)
	id := uuid.New().String()
	logger := conf.logger.With(zap.String("memoizer_id", id))
	store := newMemoStore(conf.maxEntries)

	return func(args ...any) any {
		key := canonicalKey(args)
		v, hit := store.loadOrCompute(key, func() any {
			return fn(args...)
		})
		if hit {
			conf.collector.memoizeHit(id)
		} else {
			conf.collector.memoizeMiss(id)
			logger.Debug("memoized fresh result", zap.Int("key_bytes", len(key)))
		}
		return v
	}
}

// canonicalKey serializes an argument list into the cache key. Map keys are
// sorted so structurally-identical arguments always yield one key. Failures
// propagate as a panic instead of being cached.
func canonicalKey(args []any) string {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(args); err != nil {
		panic(fmt.Errorf("%w: %v", ErrUnserializableArgs, err))
	}
	return buf.String()
}

// Package fn provides higher-order function combinators: memoization,
// debouncing, and currying.
//
// The Memoize family caches results of a wrapped function keyed by a
// canonical serialization of its argument list. Memoization is not just a
// performance trick; wrapping a function this way forces the question
// "is this function really pure?" — a memoized impure function will happily
// replay a stale side-effect-free answer forever.
//
// Features:
//   - MemoizeI1O1 to MemoizeI3O1, MemoizeI1O2: typed, generic memoizers for
//     common arities, keyed by msgpack serialization of the arguments.
//   - Debouncer: collapses call bursts into one trailing invocation.
//   - Curry2 to Curry4 and CurryFn/PartialFn: fully-curried typed forms and
//     incremental variadic partial application.
//   - Optional zap logging and prometheus metrics on every instance.
//
// WARNING: do not memoize impure functions (those depending on time, I/O,
// randomness, etc). The cache is unbounded by default and never evicted;
// WithMaxEntries opts into a rotating bound.
package fn

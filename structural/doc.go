// Package structural provides deep, by-value operations over arbitrary Go
// values: Clone duplicates a value graph and Equal compares two of them.
//
// Both walk the same finite set of supported kinds: primitives, time.Time,
// date.Date, *regexp.Regexp, slices, arrays, maps, structs, and pointers.
// Struct traversal covers exported fields only; unexported fields are
// invisible to both operations (a clone leaves them zero). Arbitrary custom
// types outside this set fall through to the struct/primitive rules —
// channels, functions, and unsafe pointers are treated as opaque capability
// values and are shared, never duplicated.
//
// Clone preserves the shape of the original graph, including cycles and
// aliased references, via an identity-keyed visited map local to one call.
// Equal has no such protection: handing it a cyclic value recurses without
// bound. This asymmetry is deliberate; see Equal's doc.
package structural

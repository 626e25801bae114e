// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package either provides a generic two-case sum type for Go.
//
// The core type [Either] holds exactly one of two payloads: a Left value of
// type L or a Right value of type R. By convention Left carries an error or
// alternate result and Right carries the primary result, but the type itself
// is symmetric.
//
// # Design Philosophy
//
// either provides:
//   - A closed union: the discriminant and payloads are unexported, so no
//     third state can be constructed outside the package
//   - Value semantics: every operation returns a new Either and never
//     mutates its receiver
//   - Total operations: nothing panics on a well-formed value, and there is
//     no unguarded accessor for the payload
//
// The zero value of Either[L, R] is Left holding the zero value of L.
//
// # Construction
//
//   - [Left], [Right]: Constructors
//
// # Discrimination
//
// [Match] is the primitive that consumes an Either: the caller supplies a
// handler for each variant and exactly one is invoked. Every other operation
// is derivable from it.
//
// # Queries
//
//   - [Either.IsLeft], [Either.IsRight]: Predicates, always complementary
//   - [Either.FromLeft], [Either.FromRight]: Payload or an eager default
//   - [Either.ToOption]: Right payload as an [Option]; Left becomes None
//
// # Transforms
//
// Operations that change a type parameter are package functions, since Go
// methods cannot declare type parameters.
//
//   - [Map]: Functor map over Right
//   - [MapLeft]: Functor map over Left
//   - [Bimap]: Map both sides in one call
//   - [FlatMap]: Monadic bind, right-biased
//   - [Either.Swap]: Exchange Left and Right
//
// Map, MapLeft, Bimap and FlatMap never call the function for the inactive
// variant. Map obeys the functor laws:
//
//	Map(e, id)             == e
//	Map(Map(e, g), f)      == Map(e, func(x) { return f(g(x)) })
//
// # Comparison
//
// For comparable L and R, Either values compare with == and work as map
// keys. [Equal] spells this out; [EqualFunc] takes payload comparators for
// types that are not comparable.
//
// # Collections and Errors
//
//   - [Lefts], [Rights], [Partition]: Split a slice of Either values
//   - [FromError], [ToError]: Convert to and from Go's (T, error) pair
//
// # Example
//
//	code := either.Left[int, string](19)
//	msg := either.Match(code,
//		func(c int) string { return "Error code: " + strconv.Itoa(c) },
//		func(s string) string { return s },
//	)
//	// msg == "Error code: 19"
package either

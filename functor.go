// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// Functor and monad operations over Either.
//
// Go methods cannot introduce type parameters, so every transform that
// changes L or R is a package-level function. Each one is expressible as
// Match followed by a constructor; the direct branch avoids the two
// handler closures.

// Map applies f to the Right payload.
// A Left is returned unchanged and f is not called.
func Map[L, R, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, T](e.left)
}

// MapLeft applies f to the Left payload.
// A Right is returned unchanged and f is not called.
func MapLeft[L, R, T any](e Either[L, R], f func(L) T) Either[T, R] {
	if e.isRight {
		return Right[T](e.right)
	}
	return Left[T, R](f(e.left))
}

// Bimap applies onLeft to a Left payload or onRight to a Right payload.
// Only the handler for the active variant is called.
//
// Map(e, f) is Bimap(e, identity, f).
func Bimap[L, R, T, K any](e Either[L, R], onLeft func(L) T, onRight func(R) K) Either[T, K] {
	if e.isRight {
		return Right[T](onRight(e.right))
	}
	return Left[T, K](onLeft(e.left))
}

// FlatMap sequences two Either computations.
// A Left short-circuits and f is not called.
func FlatMap[L, R, T any](e Either[L, R], f func(R) Either[L, T]) Either[L, T] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, T](e.left)
}

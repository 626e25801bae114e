// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "fmt"

// Either represents a value that is either Left (alternate) or Right (primary).
//
// The zero value is Left holding the zero value of L.
// Only the payload of the active variant is set; the other slot stays zero,
// so Either values of comparable L and R compare with == structurally.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left value.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{isRight: false, left: v}
}

// Right creates a Right value.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{isRight: true, right: v}
}

// Match pattern matches on e, calling onLeft or onRight.
// Exactly one handler is invoked.
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// FromLeft returns the Left payload, or def if e is Right.
func (e Either[L, R]) FromLeft(def L) L {
	if e.isRight {
		return def
	}
	return e.left
}

// FromRight returns the Right payload, or def if e is Left.
func (e Either[L, R]) FromRight(def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

// ToOption converts e to an Option holding the Right payload.
// A Left becomes None and its payload is discarded.
func (e Either[L, R]) ToOption() Option[R] {
	if e.isRight {
		return Some(e.right)
	}
	return None[R]()
}

// Swap exchanges the variants: Left(v) becomes Right(v) and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// String implements fmt.Stringer as Left(v) or Right(v).
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

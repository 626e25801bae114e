// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// Equal reports whether a and b are the same variant with equal payloads.
// For comparable L and R this is the same as a == b.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	return a == b
}

// EqualFunc is like Equal but compares payloads with eqL and eqR,
// for payload types that are not comparable.
// At most one of eqL and eqR is called.
func EqualFunc[L1, R1, L2, R2 any](a Either[L1, R1], b Either[L2, R2], eqL func(L1, L2) bool, eqR func(R1, R2) bool) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return eqR(a.right, b.right)
	}
	return eqL(a.left, b.left)
}

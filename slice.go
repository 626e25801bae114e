// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// Lefts returns the payloads of the Left elements of es, in order.
func Lefts[L, R any](es []Either[L, R]) []L {
	out := make([]L, 0, len(es))
	for _, e := range es {
		if !e.isRight {
			out = append(out, e.left)
		}
	}
	return out
}

// Rights returns the payloads of the Right elements of es, in order.
func Rights[L, R any](es []Either[L, R]) []R {
	out := make([]R, 0, len(es))
	for _, e := range es {
		if e.isRight {
			out = append(out, e.right)
		}
	}
	return out
}

// Partition splits es into Left and Right payloads in a single pass.
// Relative order within each side is preserved.
func Partition[L, R any](es []Either[L, R]) ([]L, []R) {
	lefts := make([]L, 0)
	rights := make([]R, 0, len(es))
	for _, e := range es {
		if e.isRight {
			rights = append(rights, e.right)
		} else {
			lefts = append(lefts, e.left)
		}
	}
	return lefts, rights
}

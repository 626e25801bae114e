// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "errors"

// Bridge between Either[error, T] and Go's (T, error) convention.

// ErrNilLeft is returned by ToError for a Left that holds a nil error.
var ErrNilLeft = errors.New("either: Left holds nil error")

// FromError returns Left(err) if err is non-nil, otherwise Right(v).
func FromError[T any](v T, err error) Either[error, T] {
	if err != nil {
		return Left[error, T](err)
	}
	return Right[error](v)
}

// ToError unpacks e as (value, nil) for Right or (zero, err) for Left.
// A Left(nil) yields ErrNilLeft, never a nil error.
func ToError[T any](e Either[error, T]) (T, error) {
	if e.isRight {
		return e.right, nil
	}
	var zero T
	if e.left == nil {
		return zero, ErrNilLeft
	}
	return zero, e.left
}

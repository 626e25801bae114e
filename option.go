// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "fmt"

// Option holds either one value (Some) or nothing (None).
// It is the target of [Either.ToOption]. The zero value is None.
type Option[T any] struct {
	ok    bool
	value T
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{ok: true, value: v}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone returns true if o is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the value, or def if o is empty.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

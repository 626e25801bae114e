// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either_test

import (
	"strconv"
	"sync"
	"testing"

	"code.hybscloud.com/either"
)

func errorCode(code int) string { return "Error code: " + strconv.Itoa(code) }

func successMsg(msg string) string { return msg }

func TestMatchLeft(t *testing.T) {
	res := either.Left[int, string](19)

	got := either.Match(res, errorCode, successMsg)
	if got != "Error code: 19" {
		t.Fatalf("got %q, want %q", got, "Error code: 19")
	}
}

func TestMatchRight(t *testing.T) {
	res := either.Right[int]("Query executed successfully")

	got := either.Match(res, errorCode, successMsg)
	if got != "Query executed successfully" {
		t.Fatalf("got %q, want %q", got, "Query executed successfully")
	}
}

func TestMatchCallsOneHandler(t *testing.T) {
	var leftCalls, rightCalls int
	onLeft := func(int) bool { leftCalls++; return true }
	onRight := func(string) bool { rightCalls++; return false }

	either.Match(either.Left[int, string](1), onLeft, onRight)
	if leftCalls != 1 || rightCalls != 0 {
		t.Fatalf("Left: leftCalls=%d rightCalls=%d, want 1 0", leftCalls, rightCalls)
	}

	either.Match(either.Right[int]("x"), onLeft, onRight)
	if leftCalls != 1 || rightCalls != 1 {
		t.Fatalf("Right: leftCalls=%d rightCalls=%d, want 1 1", leftCalls, rightCalls)
	}
}

func TestPredicates(t *testing.T) {
	l := either.Left[int, string](7)
	if !l.IsLeft() || l.IsRight() {
		t.Fatal("Left: expected IsLeft and not IsRight")
	}

	r := either.Right[int]("seven")
	if r.IsLeft() || !r.IsRight() {
		t.Fatal("Right: expected IsRight and not IsLeft")
	}
}

func TestZeroValueIsLeft(t *testing.T) {
	var e either.Either[int, string]
	if !e.IsLeft() {
		t.Fatal("zero value should be Left")
	}
	if got := e.FromLeft(-1); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if e != either.Left[int, string](0) {
		t.Fatal("zero value should equal Left(0)")
	}
}

func TestFromLeft(t *testing.T) {
	if got := either.Left[int, string](19).FromLeft(-1); got != 19 {
		t.Fatalf("got %d, want 19", got)
	}
	if got := either.Right[int]("x").FromLeft(-1); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestFromRight(t *testing.T) {
	if got := either.Right[int]("ok").FromRight("default"); got != "ok" {
		t.Fatalf("got %q, want %q", got, "ok")
	}
	if got := either.Left[int, string](19).FromRight("default"); got != "default" {
		t.Fatalf("got %q, want %q", got, "default")
	}
}

func TestToOption(t *testing.T) {
	v, ok := either.Right[int]("present").ToOption().Get()
	if !ok || v != "present" {
		t.Fatalf("got (%q, %v), want (%q, true)", v, ok, "present")
	}

	o := either.Left[int, string](19).ToOption()
	if o.IsSome() {
		t.Fatalf("got %v, want None", o)
	}
}

func TestSwap(t *testing.T) {
	l := either.Left[int, string](42)
	if got, want := l.Swap(), either.Right[string](42); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	r := either.Right[int]("hello")
	if got, want := r.Swap(), either.Left[string, int]("hello"); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got := r.Swap().Swap(); got != r {
		t.Fatalf("swap twice: got %v, want %v", got, r)
	}
}

func TestSwapDoesNotMutate(t *testing.T) {
	e := either.Left[int, int](3)
	_ = e.Swap()
	if !e.IsLeft() || e.FromLeft(0) != 3 {
		t.Fatalf("receiver changed: %v", e)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Left", either.Left[int, string](19).String(), "Left(19)"},
		{"Right", either.Right[int]("abc").String(), "Right(abc)"},
		{"Zero", either.Either[string, int]{}.String(), "Left()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestMapKey(t *testing.T) {
	m := map[either.Either[int, int]]string{
		either.Left[int, int](1):  "left one",
		either.Right[int, int](1): "right one",
	}
	if len(m) != 2 {
		t.Fatalf("got %d keys, want 2", len(m))
	}
	if got := m[either.Left[int, int](1)]; got != "left one" {
		t.Fatalf("got %q, want %q", got, "left one")
	}
	if got := m[either.Right[int, int](1)]; got != "right one" {
		t.Fatalf("got %q, want %q", got, "right one")
	}
}

func TestConcurrentReads(t *testing.T) {
	e := either.Right[string](21)
	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			for range 100 {
				got := either.Map(e, func(x int) int { return x * 2 }).FromRight(0)
				if got != 42 {
					t.Errorf("got %d, want 42", got)
					return
				}
			}
		})
	}
	wg.Wait()
	if got := e.FromRight(0); got != 21 {
		t.Fatalf("receiver changed: got %d, want 21", got)
	}
}

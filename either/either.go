/*
Package either implements a value of one of two types, modelled after
Haskell's Either.

	type Either a b = Left a | Right b

Like Maybe and Result, an Either is inspected with a matcher object:

	var n int
	var s string
	switch m := e.Match(); m {
	case m.Left(&n):
		…
	case m.Right(&s):
		…
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package either

import "fmt"

// Either holds either a Left or a Right value.
type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
	GetLeft() (L, bool)
	GetRight() (R, bool)
}

type either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](x L) Either[L, R] {
	return either[L, R]{left: x}
}

func Right[L, R any](x R) Either[L, R] {
	return either[L, R]{right: x, isRight: true}
}

func (e either[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: e}
}

func (e either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

func (e either[L, R]) GetRight() (R, bool) {
	return e.right, e.isRight
}

func (e either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold applies fl to a Left value and fr to a Right value.
func Fold[L, R, T any](e Either[L, R], fl func(L) T, fr func(R) T) T {
	if l, ok := e.GetLeft(); ok {
		return fl(l)
	}
	r, _ := e.GetRight()
	return fr(r)
}

// --- Matching --------------------------------------------------------------

type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (em *matcher[L, R]) Left(v *L) Matcher[L, R] {
	if !em.e.isRight {
		*v = em.e.left
		return em
	}
	return nil
}

func (em *matcher[L, R]) Right(v *R) Matcher[L, R] {
	if em.e.isRight {
		*v = em.e.right
		return em
	}
	return nil
}

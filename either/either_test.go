package either_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/patmatch/either"
)

func parse(s string) either.Either[error, int] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return either.Left[error, int](err)
	}
	return either.Right[error](n)
}

func TestEitherMatch(t *testing.T) {
	var n int
	var err error
	switch m := parse("2").Match(); m {
	case m.Left(&err):
		t.Errorf("expected Right, have error %v", err)
	case m.Right(&n):
		if n != 2 {
			t.Errorf("expected 2, have %d", n)
		}
	}
	switch m := parse("two").Match(); m {
	case m.Right(&n):
		t.Errorf("expected Left, have %d", n)
	case m.Left(&err):
		t.Logf("err = %v", err)
	}
}

func TestEitherOfSlices(t *testing.T) {
	e := either.Right[string]([]int{1, 2})
	var l string
	var r []int
	switch m := e.Match(); m {
	case m.Left(&l):
		t.Errorf("expected Right")
	case m.Right(&r):
	}
	if len(r) != 2 {
		t.Errorf("expected 2 elements, have %v", r)
	}
}

func TestFold(t *testing.T) {
	describe := func(e either.Either[error, int]) string {
		return either.Fold(e,
			func(err error) string { return "error" },
			func(n int) string { return strconv.Itoa(n) })
	}
	if s := describe(parse("7")); s != "7" {
		t.Errorf("expected 7, have %q", s)
	}
	if s := describe(parse("x")); s != "error" {
		t.Errorf("expected error, have %q", s)
	}
	if !parse("x").IsLeft() {
		t.Errorf("expected Left")
	}
}

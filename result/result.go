/*
Package result implements the result of a computation that may fail, modelled
after Elm's Result.

	switch m := r.Match(); m {
	case m.Ok(&v):
		…
	case m.Err(&err):
		…
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package result

// Result is either Ok with a value or Err with a non-nil error.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. A nil err is replaced by ErrUnknown, keeping the
// Ok/Err distinction intact.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnknown
	}
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

// Get unwraps r the Go way.
func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Map transforms an Ok value and passes errors through.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// MapError transforms an error and passes Ok values through.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	if _, err := r.Get(); err != nil {
		return Err[T](f(err))
	}
	return r
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}

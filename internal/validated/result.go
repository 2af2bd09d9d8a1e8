// Package validated implements error-accumulating results and the
// combinators that compose them. Unlike plain error returns, independent
// sub-computations are all run and every failure is kept, so one pass over
// an input reports every problem at once.
package validated

import "fmt"

// Result is either a success carrying a value or a failure carrying a
// non-empty list of errors. The zero value is a success holding T's zero value.
type Result[T any] struct {
	value T
	errs  []Error
}

// Ok wraps v as a success.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail builds a failure. It panics when called without errors.
func Fail[T any](errs ...Error) Result[T] {
	if len(errs) == 0 {
		panic("validated: Fail called without errors")
	}
	return Result[T]{errs: append([]Error(nil), errs...)}
}

// Failf builds a single-error failure located at p.
func Failf[T any](p Path, target, format string, args ...any) Result[T] {
	return Fail[T](NewError(p, target, fmt.Sprintf(format, args...)))
}

// Lift converts a single optional error into the list shape: a nil err
// yields Ok(v).
func Lift[T any](v T, err *Error) Result[T] {
	if err == nil {
		return Ok(v)
	}
	return Fail[T](*err)
}

// OK reports whether r is a success.
func (r Result[T]) OK() bool { return len(r.errs) == 0 }

// Value returns the success value, or T's zero value for a failure.
func (r Result[T]) Value() T { return r.value }

// Errors returns a copy of the failure list; nil for a success.
func (r Result[T]) Errors() []Error {
	if len(r.errs) == 0 {
		return nil
	}
	return append([]Error(nil), r.errs...)
}

// Get returns the value and, for a failure, the errors as a List.
func (r Result[T]) Get() (T, error) {
	if r.OK() {
		return r.value, nil
	}
	return r.value, List(r.Errors())
}

func failed[U, T any](r Result[T]) Result[U] {
	return Result[U]{errs: r.errs}
}

// Map applies f to a success value.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.OK() {
		return failed[U](r)
	}
	return Ok(f(r.value))
}

// Bind chains a dependent computation onto a success value.
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.OK() {
		return failed[U](r)
	}
	return f(r.value)
}

// Traverse runs f over every element of xs and collects the values in
// order. Element i is parsed under p.parseSeq.i. All elements are attempted;
// the failure, if any, concatenates the errors of every failing element.
func Traverse[T, U any](p Path, xs []T, f func(Path, T) Result[U]) Result[[]U] {
	rs := make([]Result[U], len(xs))
	for i, x := range xs {
		rs[i] = f(p.With("parseSeq").Index(i), x)
	}
	return Sequence(rs)
}

// Sequence turns a list of results into a result of a list.
func Sequence[T any](rs []Result[T]) Result[[]T] {
	out := make([]T, 0, len(rs))
	var errs []Error
	for _, r := range rs {
		if !r.OK() {
			errs = append(errs, r.errs...)
			continue
		}
		out = append(out, r.value)
	}
	if len(errs) > 0 {
		return Result[[]T]{errs: errs}
	}
	return Ok(out)
}

// Concat flattens a list of list results, accumulating every failure.
func Concat[T any](rs ...Result[[]T]) Result[[]T] {
	return Map(Sequence(rs), func(parts [][]T) []T {
		out := make([]T, 0, len(parts))
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	})
}

// Zip2 combines two independent results. Both are inspected; a failure
// carries the errors of a followed by those of b.
func Zip2[A, B, R any](a Result[A], b Result[B], f func(A, B) R) Result[R] {
	if errs := join(a.errs, b.errs); len(errs) > 0 {
		return Result[R]{errs: errs}
	}
	return Ok(f(a.value, b.value))
}

// Zip3 is Zip2 for three results.
func Zip3[A, B, C, R any](a Result[A], b Result[B], c Result[C], f func(A, B, C) R) Result[R] {
	if errs := join(a.errs, b.errs, c.errs); len(errs) > 0 {
		return Result[R]{errs: errs}
	}
	return Ok(f(a.value, b.value, c.value))
}

// WithEntity stamps entity on every error of r that does not name one yet.
func WithEntity[T any](r Result[T], entity string) Result[T] {
	if r.OK() {
		return r
	}
	errs := make([]Error, len(r.errs))
	for i, e := range r.errs {
		if e.Meta.Entity == "" {
			e.Meta.Entity = entity
		}
		errs[i] = e
	}
	return Result[T]{errs: errs}
}

func join(lists ...[]Error) []Error {
	var out []Error
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

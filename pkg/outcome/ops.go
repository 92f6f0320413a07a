package outcome

import "errors"

// Map applies fn to a present payload and rewraps the output through
// construction normalization, so a nullish output becomes Nil and an
// error output becomes Err. Nil stays Nil; a failure is carried across
// the type change; a spent payload becomes the consumed-reference
// failure.
func Map[In, Out any](r Result[In], fn func(In) Out) Result[Out] {
	switch r.kind {
	case KindOk:
		v, err := r.peek()
		if err != nil {
			return Err[Out](err)
		}
		return ResultOf(fn(v))
	case KindErr:
		return ErrFrom[In, Out](r)
	default:
		return Result[Out]{}
	}
}

// AndThen sequences a container-producing continuation. The
// continuation's container is returned as-is, never double-wrapped.
// Nil skips the continuation and stays Nil.
func AndThen[In, Out any](r Result[In], fn func(In) Result[Out]) Result[Out] {
	switch r.kind {
	case KindOk:
		v, err := r.peek()
		if err != nil {
			return Err[Out](err)
		}
		return fn(v)
	case KindErr:
		return ErrFrom[In, Out](r)
	default:
		return Result[Out]{}
	}
}

// Guard narrows a present payload to Out by type assertion. Anything
// that is not a present Out (absence, failure, another type, a spent
// payload) degrades to None.
func Guard[In, Out any](r Result[In]) Maybe[Out] {
	if r.kind != KindOk {
		return Maybe[Out]{}
	}
	v, err := r.peek()
	if err != nil {
		return Maybe[Out]{}
	}
	out, ok := any(v).(Out)
	if !ok {
		return Maybe[Out]{}
	}
	return Some(out)
}

// Fold reduces the container to a plain value with one handler per
// variant. All handlers are mandatory; a spent payload routes through
// onErr with ErrConsumed.
func Fold[In, Out any](r Result[In], onOk func(In) Out, onNil func() Out, onErr func(error) Out) Out {
	switch r.kind {
	case KindOk:
		v, err := r.peek()
		if err != nil {
			return onErr(err)
		}
		return onOk(v)
	case KindErr:
		return onErr(r.err)
	default:
		return onNil()
	}
}

// Filter keeps a present value that satisfies pred, as the presence
// view. Absent and failed inputs degrade to None: an error value
// carries no data to test. A panicking predicate or a spent payload
// degrades to None as well.
func (r Result[T]) Filter(pred func(T) bool) Maybe[T] {
	if r.kind != KindOk {
		return Maybe[T]{}
	}
	v, err := r.peek()
	if err != nil {
		return Maybe[T]{}
	}
	if !safePred(pred, v) {
		return Maybe[T]{}
	}
	return r.ToMaybe()
}

func safePred[T any](pred func(T) bool, v T) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return pred(v)
}

// Or returns the presence view of the container when it holds a value,
// otherwise the alternative normalized through MaybeOf.
func (r Result[T]) Or(alt func() T) Maybe[T] {
	if r.kind == KindOk {
		return r.ToMaybe()
	}
	return MaybeOf(alt())
}

// Catch hands a failure to the recovery hook; present and absent
// containers pass through untouched.
func (r Result[T]) Catch(fn func(error) Result[T]) Result[T] {
	if r.kind != KindErr {
		return r
	}
	return fn(r.err)
}

// Cases holds the optional per-variant handlers for Match. A missing
// handler passes the container through unchanged. Gone runs when a
// present payload was already consumed; without it Match yields the
// consumed-reference failure.
type Cases[T any] struct {
	Ok   func(T) Result[T]
	Nil  func() Result[T]
	Err  func(error) Result[T]
	Gone func(error) Result[T]
}

// Match routes the container through the matching case handler. Handler
// outputs are containers already; they are never double-wrapped.
func (r Result[T]) Match(c Cases[T]) Result[T] {
	switch r.kind {
	case KindOk:
		v, err := r.peek()
		if err != nil {
			if c.Gone != nil {
				return c.Gone(err)
			}
			return Err[T](err)
		}
		if c.Ok == nil {
			return r
		}
		return c.Ok(v)
	case KindErr:
		if c.Err == nil {
			return r
		}
		return c.Err(r.err)
	default:
		if c.Nil == nil {
			return r
		}
		return c.Nil()
	}
}

// Tee runs a side effect on a present payload and returns the container
// unchanged. The payload is observed, not consumed.
func (r Result[T]) Tee(fn func(T)) Result[T] {
	if r.kind == KindOk {
		if v, err := r.peek(); err == nil {
			fn(v)
		}
	}
	return r
}

// TeeErr runs a side effect on a failure and returns the container
// unchanged.
func (r Result[T]) TeeErr(fn func(error)) Result[T] {
	if r.kind == KindErr {
		fn(r.err)
	}
	return r
}

// Validate turns a failed check into a failure carrying msg, unlike
// Filter which degrades to absence. Absence passes through; existing
// failures keep their original error.
func (r Result[T]) Validate(pred func(T) bool, msg string) Result[T] {
	if r.kind != KindOk {
		return r
	}
	v, err := r.peek()
	if err != nil {
		return Err[T](err)
	}
	if !safePred(pred, v) {
		return Err[T](errors.New(msg))
	}
	return r
}

package outcome

// MaybeOf lifts a plain value into the presence view: nullish values
// become None, everything else Some.
func MaybeOf[T any](v T) Maybe[T] {
	if IsNil(any(v)) {
		return Maybe[T]{}
	}
	return Some(v)
}

// ResultOf lifts a plain value into the full sum: nullish values become
// Nil, error values Err, everything else Ok.
func ResultOf[T any](v T) Result[T] {
	if IsNil(any(v)) {
		return Result[T]{}
	}
	if err, ok := any(v).(error); ok {
		return Err[T](err)
	}
	return Ok(v)
}

// FromAny applies the dynamic normalization order: nullish values become
// Nil; an existing container passes through widened to an any payload
// (the one-shot slot stays shared, so consumption remains linked); error
// values become Err; everything else Ok.
func FromAny(v any) Result[any] {
	if IsNil(v) {
		return Result[any]{}
	}
	if c, ok := v.(anyResulter); ok {
		return c.toAnyResult()
	}
	if err, ok := v.(error); ok {
		return Err[any](err)
	}
	return Ok[any](v)
}

// MaybeFromAny is the presence counterpart of FromAny. A failed
// container degrades to None, the same rule Filter and Guard apply.
func MaybeFromAny(v any) Maybe[any] {
	if IsNil(v) {
		return Maybe[any]{}
	}
	if c, ok := v.(anyMayber); ok {
		return c.toAnyMaybe()
	}
	return Some[any](v)
}

// Try runs fn inside the synchronous failure boundary: a panic is
// recovered into PanicError, a returned error becomes Err, and the value
// is lifted through ResultOf.
func Try[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](NewPanicError(rec))
		}
	}()
	v, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return ResultOf(v)
}

// TryWith is Try for a one-argument function.
func TryWith[In, T any](fn func(In) (T, error), arg In) Result[T] {
	return Try(func() (T, error) {
		return fn(arg)
	})
}

// IsResult reports whether v is one of the containers, whatever its
// payload type.
func IsResult(v any) bool {
	_, ok := v.(anyResulter)
	return ok
}

// Unwrap strips one container level: a failure yields its error value, a
// present payload is extracted (consuming a one-shot slot), absence
// yields nil, and non-container values pass through untouched.
func Unwrap(v any) any {
	c, ok := v.(anyGetter)
	if !ok {
		return v
	}
	out, err := c.getAny()
	if err != nil {
		return err
	}
	return out
}

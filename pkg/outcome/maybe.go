package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Maybe is the failure-free narrowing of Result: a present value (Some)
// or deliberate absence (None). The zero value is None.
type Maybe[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	lin       *linear
	kind      Kind
}

// Some wraps a present value under the same isolation contract as Ok.
func Some[T any](value T) Maybe[T] {
	m := Maybe[T]{
		kind:      KindOk,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
	m.value, m.lin = buildSlot(value)
	return m
}

// None is the absent outcome. Equivalent to the zero Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) Kind() Kind {
	return m.kind
}

func (m Maybe[T]) IsSome() bool {
	return m.kind == KindOk
}

func (m Maybe[T]) IsNone() bool {
	return m.kind == KindNil
}

// Err always reports nil: the presence view cannot hold a failure.
func (m Maybe[T]) Err() error {
	return nil
}

func (m Maybe[T]) Id() uuid.UUID {
	return m.id
}

func (m Maybe[T]) CreatedAt() time.Time {
	return m.createdAt
}

// Consumed reports whether a one-shot payload was already released.
func (m Maybe[T]) Consumed() bool {
	return m.lin != nil && m.lin.spent()
}

// Get extracts the payload. Some releases a one-shot payload exactly
// once and reports ErrConsumed afterwards; None returns the zero value
// and no error.
func (m Maybe[T]) Get() (T, error) {
	var zero T
	if m.kind != KindOk {
		return zero, nil
	}
	if m.lin == nil {
		return m.value, nil
	}
	v, ok := m.lin.take()
	if !ok {
		return zero, ErrConsumed
	}
	val, _ := v.(T)
	return val, nil
}

// MustGet is Get that panics on failure.
func (m Maybe[T]) MustGet() T {
	v, err := m.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (m Maybe[T]) peek() (T, error) {
	var zero T
	if m.lin == nil {
		return m.value, nil
	}
	v, ok := m.lin.read()
	if !ok {
		return zero, ErrConsumed
	}
	val, _ := v.(T)
	return val, nil
}

// String formats the container for debugging without consuming the
// payload.
func (m Maybe[T]) String() string {
	if m.kind != KindOk {
		return "None"
	}
	if m.lin != nil {
		v, ok := m.lin.read()
		if !ok {
			return "Some(<consumed>)"
		}
		return fmt.Sprintf("Some(%v)", v)
	}
	return fmt.Sprintf("Some(%v)", m.value)
}

// ToResult widens the presence view back into the full sum. The one-shot
// slot stays shared, so consumption remains linked.
func (m Maybe[T]) ToResult() Result[T] {
	if m.kind != KindOk {
		return Result[T]{}
	}
	return Result[T]{
		kind:      KindOk,
		value:     m.value,
		lin:       m.lin,
		createdAt: m.createdAt,
		id:        m.id,
	}
}

// Filter keeps a present value that satisfies pred. Absence stays
// absent; a panicking predicate or a spent payload degrades to None.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.kind != KindOk {
		return Maybe[T]{}
	}
	v, err := m.peek()
	if err != nil {
		return Maybe[T]{}
	}
	if !safePred(pred, v) {
		return Maybe[T]{}
	}
	return m
}

// Or returns the container when it holds a value, otherwise the
// alternative normalized through MaybeOf.
func (m Maybe[T]) Or(alt func() T) Maybe[T] {
	if m.kind == KindOk {
		return m
	}
	return MaybeOf(alt())
}

// Tee runs a side effect on a present payload and returns the container
// unchanged. The payload is observed, not consumed.
func (m Maybe[T]) Tee(fn func(T)) Maybe[T] {
	if m.kind == KindOk {
		if v, err := m.peek(); err == nil {
			fn(v)
		}
	}
	return m
}

// MapMaybe applies fn to a present payload and rewraps the output
// through MaybeOf. A spent payload degrades to None.
func MapMaybe[In, Out any](m Maybe[In], fn func(In) Out) Maybe[Out] {
	if m.kind != KindOk {
		return Maybe[Out]{}
	}
	v, err := m.peek()
	if err != nil {
		return Maybe[Out]{}
	}
	return MaybeOf(fn(v))
}

// AndThenMaybe sequences a presence-producing continuation; its
// container is returned as-is, never double-wrapped.
func AndThenMaybe[In, Out any](m Maybe[In], fn func(In) Maybe[Out]) Maybe[Out] {
	if m.kind != KindOk {
		return Maybe[Out]{}
	}
	v, err := m.peek()
	if err != nil {
		return Maybe[Out]{}
	}
	return fn(v)
}

// GuardMaybe narrows a present payload to Out by type assertion;
// anything else degrades to None.
func GuardMaybe[In, Out any](m Maybe[In]) Maybe[Out] {
	if m.kind != KindOk {
		return Maybe[Out]{}
	}
	v, err := m.peek()
	if err != nil {
		return Maybe[Out]{}
	}
	out, ok := any(v).(Out)
	if !ok {
		return Maybe[Out]{}
	}
	return Some(out)
}

// FoldMaybe reduces the presence view to a plain value. A spent payload
// routes through onNone.
func FoldMaybe[In, Out any](m Maybe[In], onSome func(In) Out, onNone func() Out) Out {
	if m.kind != KindOk {
		return onNone()
	}
	v, err := m.peek()
	if err != nil {
		return onNone()
	}
	return onSome(v)
}

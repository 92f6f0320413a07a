package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the variant held by a container.
type Kind uint8

const (
	KindNil Kind = iota
	KindOk
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "Ok"
	case KindErr:
		return "Err"
	default:
		return "Nil"
	}
}

// Result is the closed sum of a present value (Ok), deliberate absence
// (Nil) and a failure (Err). The zero value is Nil.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	lin       *linear
	err       error
	kind      Kind
}

// Ok wraps a present value. Payloads with reference semantics are
// isolated into a one-shot slot; see Get for the extraction contract.
func Ok[T any](value T) Result[T] {
	r := Result[T]{
		kind:      KindOk,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
	r.value, r.lin = buildSlot(value)
	return r
}

// Nil is the absent outcome. Equivalent to the zero Result.
func Nil[T any]() Result[T] {
	return Result[T]{}
}

// Err wraps a failure. A nil error is normalized to ErrNoCause so the
// container still reports a failure.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNoCause
	}
	return Result[T]{
		kind:      KindErr,
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrFrom carries a failure across a payload type change, preserving the
// error and the identity metadata of the source container. Intended for
// short-circuiting in type-changing combinators.
func ErrFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		kind:      KindErr,
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Kind() Kind {
	return r.kind
}

func (r Result[T]) IsOk() bool {
	return r.kind == KindOk
}

func (r Result[T]) IsNil() bool {
	return r.kind == KindNil
}

func (r Result[T]) IsErr() bool {
	return r.kind == KindErr
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Consumed reports whether a one-shot payload was already released.
func (r Result[T]) Consumed() bool {
	return r.lin != nil && r.lin.spent()
}

// Get extracts the payload. Ok returns the value; a one-shot payload is
// released exactly once and every later Get reports ErrConsumed. Nil
// returns the zero value and no error. Err returns the zero value and
// the stored failure.
func (r Result[T]) Get() (T, error) {
	var zero T
	switch r.kind {
	case KindOk:
		if r.lin == nil {
			return r.value, nil
		}
		v, ok := r.lin.take()
		if !ok {
			return zero, ErrConsumed
		}
		val, _ := v.(T)
		return val, nil
	case KindErr:
		return zero, r.err
	default:
		return zero, nil
	}
}

// MustGet is Get that panics on failure.
func (r Result[T]) MustGet() T {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// peek reads an Ok payload without consuming it.
func (r Result[T]) peek() (T, error) {
	var zero T
	if r.lin == nil {
		return r.value, nil
	}
	v, ok := r.lin.read()
	if !ok {
		return zero, ErrConsumed
	}
	val, _ := v.(T)
	return val, nil
}

// String formats the container for debugging without consuming the
// payload. It carries no semantics.
func (r Result[T]) String() string {
	switch r.kind {
	case KindOk:
		if r.lin != nil {
			v, ok := r.lin.read()
			if !ok {
				return "Ok(<consumed>)"
			}
			return fmt.Sprintf("Ok(%v)", v)
		}
		return fmt.Sprintf("Ok(%v)", r.value)
	case KindErr:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "Nil"
	}
}

// ToMaybe projects onto the presence view: Ok keeps its payload (the
// one-shot slot stays shared, so consumption remains linked), Nil and
// Err both become None.
func (r Result[T]) ToMaybe() Maybe[T] {
	if r.kind != KindOk {
		return Maybe[T]{}
	}
	return Maybe[T]{
		kind:      KindOk,
		value:     r.value,
		lin:       r.lin,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

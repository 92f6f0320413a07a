package outcome

// Container is the payload-independent view shared by Result and Maybe
// values.
type Container interface {
	Kind() Kind
	Err() error
	Consumed() bool
	String() string
}

// Provider yields a typed payload under the extraction contract.
type Provider[T any] interface {
	Get() (T, error)
	MustGet() T
}

// anyResulter widens a container into the full sum over an any payload.
type anyResulter interface {
	toAnyResult() Result[any]
}

// anyMayber projects a container onto the presence view over an any
// payload.
type anyMayber interface {
	toAnyMaybe() Maybe[any]
}

// anyGetter extracts a container's payload or failure dynamically.
type anyGetter interface {
	getAny() (any, error)
}

var (
	_ Container     = Result[any]{}
	_ Container     = Maybe[any]{}
	_ Provider[int] = Result[int]{}
	_ Provider[int] = Maybe[int]{}
	_ anyResulter   = Result[int]{}
	_ anyResulter   = Maybe[int]{}
	_ anyMayber     = Result[int]{}
	_ anyMayber     = Maybe[int]{}
	_ anyGetter     = Result[int]{}
	_ anyGetter     = Maybe[int]{}
)

func (r Result[T]) toAnyResult() Result[any] {
	out := Result[any]{
		kind:      r.kind,
		err:       r.err,
		lin:       r.lin,
		createdAt: r.createdAt,
		id:        r.id,
	}
	if r.kind == KindOk && r.lin == nil {
		out.value = r.value
	}
	return out
}

func (r Result[T]) toAnyMaybe() Maybe[any] {
	if r.kind != KindOk {
		return Maybe[any]{}
	}
	out := Maybe[any]{
		kind:      KindOk,
		lin:       r.lin,
		createdAt: r.createdAt,
		id:        r.id,
	}
	if r.lin == nil {
		out.value = r.value
	}
	return out
}

func (r Result[T]) getAny() (any, error) {
	switch r.kind {
	case KindOk:
		v, err := r.Get()
		if err != nil {
			return nil, err
		}
		return v, nil
	case KindErr:
		return nil, r.err
	default:
		return nil, nil
	}
}

func (m Maybe[T]) toAnyResult() Result[any] {
	if m.kind != KindOk {
		return Result[any]{}
	}
	out := Result[any]{
		kind:      KindOk,
		lin:       m.lin,
		createdAt: m.createdAt,
		id:        m.id,
	}
	if m.lin == nil {
		out.value = m.value
	}
	return out
}

func (m Maybe[T]) toAnyMaybe() Maybe[any] {
	out := Maybe[any]{
		kind:      m.kind,
		lin:       m.lin,
		createdAt: m.createdAt,
		id:        m.id,
	}
	if m.kind == KindOk && m.lin == nil {
		out.value = m.value
	}
	return out
}

func (m Maybe[T]) getAny() (any, error) {
	if m.kind != KindOk {
		return nil, nil
	}
	v, err := m.Get()
	if err != nil {
		return nil, err
	}
	return v, nil
}

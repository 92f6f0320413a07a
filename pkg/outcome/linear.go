package outcome

import "sync/atomic"

// linear is a one-shot payload slot shared by every copy of a container.
// The counter makes double extraction detectable even when copies race;
// it does not make the payload itself safe for concurrent mutation.
type linear struct {
	taken  atomic.Uintptr
	value  any
	shared bool
}

// take releases the payload to the caller. Only the first take wins;
// the slot is cleared so the reference can be collected.
func (l *linear) take() (any, bool) {
	if l.taken.Add(1) != 1 {
		return nil, false
	}
	v := l.value
	l.value = nil
	return v, true
}

// read observes the payload without consuming it.
func (l *linear) read() (any, bool) {
	if l.taken.Load() != 0 {
		return nil, false
	}
	return l.value, true
}

func (l *linear) spent() bool {
	return l.taken.Load() != 0
}

// buildSlot decides how a payload is stored. Exempt shapes (scalars,
// strings, functions, channels) stay inline and are readable repeatedly.
// Reference-bearing payloads go into a one-shot slot holding an isolating
// copy: a Cloner supplies its own, otherwise the reflection copier runs,
// falling back to sharing the caller's reference when it cannot copy.
func buildSlot[T any](value T) (T, *linear) {
	var inline T
	if c, ok := any(value).(Cloner[T]); ok {
		return inline, &linear{value: c.Clone()}
	}
	if !needsCopy(any(value)) {
		return value, nil
	}
	copied, ok := deepCopy(any(value))
	if !ok {
		reportCopyFallback(any(value))
		return inline, &linear{value: any(value), shared: true}
	}
	return inline, &linear{value: copied}
}

package outcome

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrConsumed reports a read of a one-shot payload that was already
// released to a caller.
var ErrConsumed = errors.New("outcome: reference already consumed")

// ErrNoCause marks a failure container built without an underlying
// error.
var ErrNoCause = errors.New("outcome: failure without cause")

// PanicError carries a recovered panic value and a cleaned stack trace
// captured at the recovery point.
type PanicError struct {
	Value any
	Stack string
}

// NewPanicError wraps a recovered panic value.
func NewPanicError(v any) *PanicError {
	return &PanicError{
		Value: v,
		Stack: captureStack(),
	}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// captureStack records the call stack above the recovery machinery,
// dropping runtime frames.
func captureStack() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}

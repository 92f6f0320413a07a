package stream

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// FinalizeHandlers fold one container into a plain value, one handler
// per track. All three are mandatory.
type FinalizeHandlers[In, Out any] struct {
	OnOk  func(v In) Out
	OnNil func() Out
	OnErr func(err error) Out
}

// Finalize is the closing stage: every container leaves the stream as a
// plain value. The output closes when the input is drained or ctx ends.
func Finalize[In, Out any](ctx context.Context, in <-chan outcome.Result[In], handlers FinalizeHandlers[In, Out]) <-chan Out {
	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				v := outcome.Fold(r, handlers.OnOk, handlers.OnNil, handlers.OnErr)

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

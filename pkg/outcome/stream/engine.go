package stream

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Engine transforms one container into the next stage's container. An
// engine sees every item, failed and absent ones included, so it can
// keep tracks separate or move items between them.
type Engine[In, Out any] func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out]

// Turnout fans in across Workers(ctx) drivers running engine and
// funnels their outputs into one channel, which closes when the input
// is drained or ctx ends. With more than one driver the output order is
// unspecified.
func Turnout[In, Out any](ctx context.Context, in <-chan outcome.Result[In], engine Engine[In, Out]) <-chan outcome.Result[Out] {
	out := make(chan outcome.Result[Out])
	wg := &sync.WaitGroup{}

	for i, n := 0, Workers(ctx); i < n; i++ {
		wg.Add(1)
		go drive(ctx, in, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Run is Turnout for stages that keep their item type.
func Run[T any](ctx context.Context, in <-chan outcome.Result[T], engine Engine[T, T]) <-chan outcome.Result[T] {
	return Turnout[T, T](ctx, in, engine)
}

func drive[In, Out any](ctx context.Context, in <-chan outcome.Result[In], out chan<- outcome.Result[Out],
	engine Engine[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			pr := engine(ctx, r)

			select {
			case out <- pr:
			case <-ctx.Done():
				return
			}
		}
	}
}

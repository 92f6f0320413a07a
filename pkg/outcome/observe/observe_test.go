package observe

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/ib-77/outcome/pkg/outcome"
)

var errBroken = errors.New("broken")

func TestHooks_FireWhenRegistered(t *testing.T) {
	t.Parallel()

	var gotValue int
	var gotErr error
	absences := 0

	ctx := WithValueHook(context.Background(), func(v int) { gotValue = v })
	ctx = WithErrorHook(ctx, func(err error) { gotErr = err })
	ctx = WithAbsenceHook(ctx, func() { absences++ })

	Value(ctx, 42)
	Error(ctx, errBroken)
	Absence(ctx)

	if gotValue != 42 {
		t.Fatalf("expected the value hook to see 42, got: %d", gotValue)
	}
	if !errors.Is(gotErr, errBroken) {
		t.Fatalf("expected the error hook to see the failure, got: %v", gotErr)
	}
	if absences != 1 {
		t.Fatalf("expected one absence, got: %d", absences)
	}
}

func TestHooks_AreTypedAndOptional(t *testing.T) {
	t.Parallel()

	intCalls := 0
	ctx := WithValueHook(context.Background(), func(int) { intCalls++ })

	Value(ctx, "a string has no hook here")
	Value(context.Background(), 1)
	Error(ctx, nil)
	Error(context.Background(), errBroken)
	Absence(context.Background())

	if intCalls != 0 {
		t.Fatalf("expected no typed hook to fire, got: %d calls", intCalls)
	}
}

func TestHooks_InnermostWins(t *testing.T) {
	t.Parallel()

	order := make([]string, 0, 1)
	ctx := WithValueHook(context.Background(), func(int) { order = append(order, "outer") })
	ctx = WithValueHook(ctx, func(int) { order = append(order, "inner") })

	Value(ctx, 1)

	if len(order) != 1 || order[0] != "inner" {
		t.Fatalf("expected only the inner hook, got: %v", order)
	}
}

func TestReport_RoutesByState(t *testing.T) {
	t.Parallel()

	var gotValue int
	var gotErr error
	absences := 0

	ctx := WithValueHook(context.Background(), func(v int) { gotValue = v })
	ctx = WithErrorHook(ctx, func(err error) { gotErr = err })
	ctx = WithAbsenceHook(ctx, func() { absences++ })

	r := Report(ctx, outcome.Ok(7))
	if gotValue != 7 {
		t.Fatalf("expected the payload reported, got: %d", gotValue)
	}
	if v, err := r.Get(); err != nil || v != 7 {
		t.Fatalf("expected reporting to leave the payload intact, got: %d (%v)", v, err)
	}

	Report(ctx, outcome.Err[int](errBroken))
	if !errors.Is(gotErr, errBroken) {
		t.Fatalf("expected the failure reported, got: %v", gotErr)
	}

	Report(ctx, outcome.Nil[int]())
	if absences != 1 {
		t.Fatalf("expected one absence, got: %d", absences)
	}
}

func TestReport_BareContextPassesThrough(t *testing.T) {
	t.Parallel()

	in := outcome.Ok("payload")
	out := Report(context.Background(), in)

	if out.Id() != in.Id() {
		t.Fatal("expected the same container back")
	}
}

func TestDescribe_Tags(t *testing.T) {
	t.Parallel()

	if got := Describe(outcome.Ok(1)); got != "ok" {
		t.Fatalf("expected ok, got: %s", got)
	}
	if got := Describe(outcome.Err[int](errBroken)); got != "err" {
		t.Fatalf("expected err, got: %s", got)
	}
	if got := Describe(outcome.Nil[int]()); got != "nil" {
		t.Fatalf("expected nil, got: %s", got)
	}

	spent := outcome.Ok([]int{1})
	_, _ = spent.Get()
	if got := Describe(spent); got != "ok+consumed" {
		t.Fatalf("expected ok+consumed, got: %s", got)
	}
}

func TestMeterHooks_BacksHooksWithCounters(t *testing.T) {
	t.Parallel()

	meter := noop.NewMeterProvider().Meter("observe_test")

	ctx, err := MeterHooks[int](context.Background(), meter, "pipeline")
	if err != nil {
		t.Fatalf("expected counters to register, got: %v", err)
	}

	Report(ctx, outcome.Ok(1))
	Report(ctx, outcome.Err[int](errBroken))
	Report(ctx, outcome.Nil[int]())
}

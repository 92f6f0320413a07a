package tests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/flow"
	"github.com/ib-77/outcome/pkg/outcome/stream"
	"github.com/ib-77/outcome/pkg/outcome/task"
)

// TestURLProcessingDirectly runs the URL pipeline end to end without HTTP requests
func TestURLProcessingDirectly(t *testing.T) {
	urls := []string{
		// Valid URLs by structure (we won't actually fetch them)
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		// Invalid URLs by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(urls)

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}

	// Verify we have results for all URLs
	assert.Equal(t, len(urls), len(results))

	// Verify we have the expected number of invalid results
	assert.Equal(t, 2, invalidCount)
}

func processRequest(urls []string) []string {
	ctx := stream.WithWorkers(context.Background(), 2)

	titled := stream.Turnout(ctx,
		stream.Run(ctx,
			stream.FromSlice(ctx, urls),
			stream.Validate(validateURLTest)),
		stream.Try(mockFetchTitle))

	out := stream.Finalize(ctx,
		stream.Turnout(ctx, titled, stream.AndThen(calculateTitleLength)),
		stream.FinalizeHandlers[int, string]{
			OnOk:  func(n int) string { return fmt.Sprintf("title length: %d", n) },
			OnNil: func() string { return "invalid" },
			OnErr: func(err error) string { return "invalid" },
		})

	var results []string
	for v := range out {
		results = append(results, v)
	}
	return results
}

// mockFetchTitle simulates fetching a title without making HTTP requests
func mockFetchTitle(_ context.Context, url string) (string, error) {
	return "Mock Page Title for " + url, nil
}

func validateURLTest(_ context.Context, url string) (bool, string) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}

func calculateTitleLength(_ context.Context, title string) outcome.Result[int] {
	return outcome.Ok(len(title))
}

func TestArithmeticFlowEndToEnd(t *testing.T) {
	r := flow.Run(context.Background(), 5,
		flow.Then(func(v int) int { return v * 2 }),
		flow.Then(func(v int) int { return v + 10 }),
		flow.Then(func(v int) int { return v / 2 }),
	)

	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

type account struct {
	Name  string
	Roles []string
}

func findAccount(name string) outcome.Result[account] {
	known := map[string]account{
		"ada": {Name: "ada", Roles: []string{"admin"}},
	}
	if a, ok := known[name]; ok {
		return outcome.Ok(a)
	}
	return outcome.Nil[account]()
}

func TestLookupFallsBackToGuest(t *testing.T) {
	guest := findAccount("nobody").Or(func() account { return account{Name: "guest"} })
	a, err := guest.Get()
	require.NoError(t, err)
	assert.Equal(t, "guest", a.Name)

	found, err := findAccount("ada").Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"admin"}, found.Roles)
}

func TestGuardNarrowsWidenedPayload(t *testing.T) {
	narrowed := outcome.Guard[any, string](outcome.FromAny("payload"))
	v, err := narrowed.Get()
	require.NoError(t, err)
	assert.Equal(t, "payload", v)

	assert.True(t, outcome.Guard[any, int](outcome.FromAny("payload")).IsNone())
}

func TestRejectedTaskSurfacesError(t *testing.T) {
	errDown := errors.New("backend down")

	r := task.Rejected[int](errDown).Await(context.Background())
	assert.True(t, r.IsErr())

	_, err := r.Get()
	assert.ErrorIs(t, err, errDown)
}

func TestAsyncFlowSettlesAsTask(t *testing.T) {
	tk := flow.Go(context.Background(), outcome.Ok(3),
		flow.Then(func(v int) int { return v * 7 }),
	)

	assert.Equal(t, 21, tk.Await(context.Background()).MustGet())
}

func TestPayloadsAreIsolatedAndSingleUse(t *testing.T) {
	tags := []string{"a"}
	r := outcome.Ok(tags)

	tags[0] = "mutated"

	got, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)

	_, err = r.Get()
	assert.ErrorIs(t, err, outcome.ErrConsumed)
}

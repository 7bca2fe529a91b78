package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/resistor-calculator/internal/platform/health"
	"github.com/jsamuelsen11/resistor-calculator/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.EXPECT().Name().Return("stdin")
	checkerA.EXPECT().HealthCheck(mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.EXPECT().Name().Return("stdout")
	checkerB.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["stdin"] != nil {
		t.Errorf("stdin check = %v, want nil", results["stdin"])
	}
	if results["stdout"] != nil {
		t.Errorf("stdout check = %v, want nil", results["stdout"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("stdin")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("not a terminal")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("terminal")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["stdin"] != nil {
		t.Errorf("stdin check = %v, want nil", results["stdin"])
	}
	if results["terminal"] == nil {
		t.Fatal("terminal check = nil, want error")
	}
	if results["terminal"].Error() != "not a terminal" {
		t.Errorf("terminal check = %q, want %q", results["terminal"].Error(), "not a terminal")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("terminal")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["terminal"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["terminal"])
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("stdin")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("stdin")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["stdin"]
	if !ok {
		t.Fatal(`expected result for key "stdin", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("stdin check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}

func TestReady_AllHealthy(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("terminal")
	checker.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checker)

	if err := r.Ready(context.Background()); err != nil {
		t.Errorf("Ready() = %v, want nil", err)
	}
}

func TestReady_NoCheckers(t *testing.T) {
	t.Parallel()

	if err := health.New().Ready(context.Background()); err != nil {
		t.Errorf("Ready() = %v, want nil with no checkers", err)
	}
}

func TestReady_JoinsFailuresInNameOrder(t *testing.T) {
	t.Parallel()

	stdoutErr := errors.New("stdout is a pipe")
	stdout := mocks.NewMockHealthChecker(t)
	stdout.EXPECT().Name().Return("stdout")
	stdout.EXPECT().HealthCheck(mock.Anything).Return(stdoutErr)

	stdinErr := errors.New("stdin is a file")
	stdin := mocks.NewMockHealthChecker(t)
	stdin.EXPECT().Name().Return("stdin")
	stdin.EXPECT().HealthCheck(mock.Anything).Return(stdinErr)

	r := health.New()
	r.Register(stdout)
	r.Register(stdin)

	err := r.Ready(context.Background())
	if !errors.Is(err, stdoutErr) || !errors.Is(err, stdinErr) {
		t.Fatalf("Ready() = %v, want both failures joined", err)
	}
	want := "stdin: stdin is a file\nstdout: stdout is a pipe"
	if err.Error() != want {
		t.Errorf("Ready().Error() = %q, want %q", err.Error(), want)
	}
}

package driver

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestDriverTickOrder(t *testing.T) {
	var order []string
	d := NewDriver([]Manager{
		ManagerFunc(func(ctx context.Context) error {
			order = append(order, "first")
			return nil
		}),
		ManagerFunc(func(ctx context.Context) error {
			order = append(order, "second")
			return nil
		}),
	})

	if err := d.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "tick count", len(order), 2)
	testutil.AssertEqual(t, "first", order[0], "first")
	testutil.AssertEqual(t, "second", order[1], "second")
}

func TestDriverTickError(t *testing.T) {
	ran := false
	d := NewDriver([]Manager{
		ManagerFunc(func(ctx context.Context) error {
			return fmt.Errorf("boom")
		}),
		ManagerFunc(func(ctx context.Context) error {
			ran = true
			return nil
		}),
	})

	if err := d.Tick(context.Background()); err == nil {
		t.Fatal("expected the manager error to surface")
	}
	testutil.AssertEqual(t, "later manager skipped", ran, false)
}

func TestDriverStartStopsOnCancel(t *testing.T) {
	ticks := make(chan struct{}, 16)
	d := NewDriver([]Manager{
		ManagerFunc(func(ctx context.Context) error {
			ticks <- struct{}{}
			return nil
		}),
	}, WithTickLength(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Start(ctx) }()

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("expected at least one tick")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("expected Start to return after cancellation")
	}
}

func TestWithTickLength(t *testing.T) {
	d := NewDriver(nil, WithTickLength(time.Second))
	testutil.AssertEqual(t, "tick length", d.tickLength, time.Second)

	d = NewDriver(nil)
	testutil.AssertEqual(t, "default", d.tickLength, DefaultTickLength)
}

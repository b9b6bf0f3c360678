package store

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestWatchEmitsKeyChanges(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	kv, err := NewDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}
	s := New(kv)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := s.Watch(ctx)
	if err != nil {
		cancel()
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	want := MealsKey("week-2024-0-8")
	if !s.Set(want, map[string]string{"monday-dinner": "鍋"}) {
		cancel()
		t.Fatal("set failed")
	}

	deadline := time.After(2 * time.Second)
wait:
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				break wait
			}
			if evt.Key != want {
				cancel()
				t.Fatalf("expected key %q, got %q", want, evt.Key)
			}
			break wait
		case <-deadline:
			cancel()
			t.Fatal("timed out waiting for key change event")
		}
	}

	cancel()
	for range ch {
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	throttle := newEventThrottle(20 * time.Millisecond)
	defer throttle.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		throttle.Enqueue(Event{Type: EventKeyChanged, Key: KeyShopping}, send)
	}

	select {
	case ev := <-got:
		if ev.Key != KeyShopping {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for flush")
	}
	select {
	case ev := <-got:
		t.Fatalf("expected a single coalesced event, got extra %+v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}

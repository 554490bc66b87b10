package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/arifmahmud/nishwash/internal/apperr"
	"github.com/arifmahmud/nishwash/internal/models"
)

func TestRetryer_SucceedsAfterTransientFailures(t *testing.T) {
	var slept []time.Duration
	r := NewRetryer(3, 200*time.Millisecond)
	r.sleep = func(d time.Duration) { slept = append(slept, d) }

	calls := 0
	err := r.Do("storage.test", func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success on third attempt, got %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	// Backoff grows linearly with the attempt number.
	want := []time.Duration{200 * time.Millisecond, 400 * time.Millisecond}
	if len(slept) != len(want) {
		t.Fatalf("slept %d times, want %d", len(slept), len(want))
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Errorf("sleep %d = %v, want %v", i, slept[i], want[i])
		}
	}
}

func TestRetryer_ExhaustionClassifiesError(t *testing.T) {
	r := NewRetryer(3, time.Millisecond)
	r.sleep = func(time.Duration) {}

	calls := 0
	err := r.Do("storage.test", func() error {
		calls++
		return errors.New("disk on fire")
	})
	if err == nil {
		t.Fatal("expected error after exhaustion")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if apperr.KindOf(err) != apperr.KindStorage {
		t.Errorf("kind = %v, want %v", apperr.KindOf(err), apperr.KindStorage)
	}
}

func TestRetryer_NoSleepAfterImmediateSuccess(t *testing.T) {
	r := NewRetryer(3, time.Second)
	r.sleep = func(time.Duration) { t.Error("must not sleep when the first attempt succeeds") }

	if err := r.Do("storage.test", func() error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewRetryer_ClampsAttempts(t *testing.T) {
	r := NewRetryer(0, time.Millisecond)
	r.sleep = func(time.Duration) {}

	calls := 0
	_ = r.Do("storage.test", func() error { calls++; return errors.New("nope") })
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

type failingProvider struct {
	Provider
	fails int
	calls int
}

func (f *failingProvider) SaveUser(u models.User) error {
	f.calls++
	if f.calls <= f.fails {
		return errors.New("transient")
	}
	return f.Provider.SaveUser(u)
}

func TestWithRetry_RetriesProviderOperations(t *testing.T) {
	base := newTestJSONStore(t)
	flaky := &failingProvider{Provider: base, fails: 2}

	r := NewRetryer(3, time.Millisecond)
	r.sleep = func(time.Duration) {}

	p := WithRetry(flaky, r)
	if err := p.SaveUser(testStoreUser()); err != nil {
		t.Fatalf("expected retries to absorb transient failures, got %v", err)
	}
	if flaky.calls != 3 {
		t.Errorf("provider called %d times, want 3", flaky.calls)
	}

	user, err := p.GetUser()
	if err != nil || user == nil {
		t.Fatalf("user must be persisted after retry, got %v, %v", user, err)
	}
}

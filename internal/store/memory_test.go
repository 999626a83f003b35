package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rentany/site/apperr"
)

func report(id string) apperr.Report {
	return apperr.NewReport(apperr.New("boom"), apperr.Context{ErrorID: id})
}

func TestNewMemoryStore(t *testing.T) {
	store := NewMemoryStore(0)
	if store == nil {
		t.Fatal("NewMemoryStore() = nil")
	}
	if store.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", store.capacity, DefaultCapacity)
	}
	if len(store.Recent()) != 0 {
		t.Errorf("Recent() = %v items, want 0", len(store.Recent()))
	}
}

func TestMemoryStore_AddNewestFirst(t *testing.T) {
	store := NewMemoryStore(10)

	store.Add(report("err_1"))
	store.Add(report("err_2"))
	store.Add(report("err_3"))

	recent := store.Recent()
	if len(recent) != 3 {
		t.Fatalf("Recent() = %v items, want 3", len(recent))
	}
	for i, want := range []string{"err_3", "err_2", "err_1"} {
		if recent[i].Context.ErrorID != want {
			t.Errorf("Recent()[%d] = %s, want %s", i, recent[i].Context.ErrorID, want)
		}
	}
}

func TestMemoryStore_EvictsOldest(t *testing.T) {
	store := NewMemoryStore(3)

	for i := 1; i <= 5; i++ {
		store.Add(report(fmt.Sprintf("err_%d", i)))
	}

	if store.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", store.Len())
	}
	recent := store.Recent()
	for i, want := range []string{"err_5", "err_4", "err_3"} {
		if recent[i].Context.ErrorID != want {
			t.Errorf("Recent()[%d] = %s, want %s", i, recent[i].Context.ErrorID, want)
		}
	}
}

func TestMemoryStore_Subscribe(t *testing.T) {
	store := NewMemoryStore(10)

	ch := store.Subscribe()
	if ch == nil {
		t.Fatal("Subscribe() = nil")
	}

	go func() {
		store.Add(report("err_sub"))
	}()

	select {
	case got := <-ch:
		if got.Context.ErrorID != "err_sub" {
			t.Errorf("received %s, want err_sub", got.Context.ErrorID)
		}
	case <-time.After(1 * time.Second):
		t.Error("Subscribe() channel did not receive report")
	}
}

func TestMemoryStore_Unsubscribe(t *testing.T) {
	store := NewMemoryStore(10)

	ch := store.Subscribe()
	store.Unsubscribe(ch)
	store.Unsubscribe(ch)

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("Unsubscribe() channel should be closed")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Unsubscribe() channel should be closed immediately")
	}
}

func TestMemoryStore_SlowSubscriberDoesNotBlock(t *testing.T) {
	store := NewMemoryStore(10)

	// never drained
	_ = store.Subscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 2*subscriberBuffer; i++ {
			store.Add(report("err_slow"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("Add() blocked on slow subscriber")
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(16)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Add(report("err_c"))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Recent()
			}
		}()
		go func() {
			defer wg.Done()
			ch := store.Subscribe()
			time.Sleep(10 * time.Millisecond)
			store.Unsubscribe(ch)
		}()
	}
	wg.Wait()

	if store.Len() != 16 {
		t.Errorf("Len() = %d, want 16", store.Len())
	}
}

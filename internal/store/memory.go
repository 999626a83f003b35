package store

import (
	"sync"

	"github.com/rentany/site/apperr"
)

// DefaultCapacity is the number of reports kept when none is configured.
const DefaultCapacity = 100

// subscriberBuffer is the channel buffer given to each subscriber.
const subscriberBuffer = 100

// MemoryStore is a bounded in-memory implementation of [Store].
//
// Reports are kept in a ring; once Capacity reports are stored, each new
// report evicts the oldest one. Subscribers receive reports via buffered
// channels (buffer size 100). Sends are non-blocking; if a subscriber's
// buffer is full, the report is dropped for that subscriber.
type MemoryStore struct {
	mu       sync.RWMutex
	reports  []apperr.Report
	next     int
	full     bool
	capacity int

	subscribers map[chan apperr.Report]struct{}
	subMu       sync.RWMutex
}

// NewMemoryStore creates a store keeping at most capacity reports.
// A non-positive capacity means [DefaultCapacity].
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		reports:     make([]apperr.Report, capacity),
		capacity:    capacity,
		subscribers: make(map[chan apperr.Report]struct{}),
	}
}

// Add stores a report and notifies all subscribers.
func (m *MemoryStore) Add(report apperr.Report) {
	m.mu.Lock()
	m.reports[m.next] = report
	m.next = (m.next + 1) % m.capacity
	if m.next == 0 {
		m.full = true
	}
	m.mu.Unlock()

	m.notifySubscribers(report)
}

// Len returns the number of stored reports.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.full {
		return m.capacity
	}
	return m.next
}

// Recent returns a snapshot of stored reports, newest first.
func (m *MemoryStore) Recent() []apperr.Report {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := m.next
	if m.full {
		n = m.capacity
	}

	out := make([]apperr.Report, 0, n)
	for i := 1; i <= n; i++ {
		idx := (m.next - i + m.capacity) % m.capacity
		out = append(out, m.reports[idx])
	}
	return out
}

// Subscribe creates a new subscription and returns a channel for receiving reports.
//
// Caller must call [MemoryStore.Unsubscribe] when done to prevent resource leaks.
func (m *MemoryStore) Subscribe() <-chan apperr.Report {
	ch := make(chan apperr.Report, subscriberBuffer)

	m.subMu.Lock()
	m.subscribers[ch] = struct{}{}
	m.subMu.Unlock()

	return ch
}

// Unsubscribe removes a subscription and closes its channel.
//
// Safe to call multiple times or with an unknown channel.
func (m *MemoryStore) Unsubscribe(ch <-chan apperr.Report) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for subCh := range m.subscribers {
		if subCh == ch {
			delete(m.subscribers, subCh)
			close(subCh)
			break
		}
	}
}

// notifySubscribers sends the report to all active subscribers without blocking.
func (m *MemoryStore) notifySubscribers(report apperr.Report) {
	m.subMu.RLock()
	defer m.subMu.RUnlock()

	for ch := range m.subscribers {
		select {
		case ch <- report:
		default:
			// subscriber is slow, drop the report
		}
	}
}

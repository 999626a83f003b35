package store

import "github.com/rentany/site/apperr"

// Store defines the interface for storing and subscribing to error reports.
//
// Store implementations must be safe for concurrent access.
type Store interface {
	// Add stores a report and notifies all subscribers.
	Add(report apperr.Report)

	// Recent returns stored reports, newest first.
	// The returned slice is a snapshot; modifications do not affect the store.
	Recent() []apperr.Report

	// Subscribe returns a channel that receives new reports.
	// The returned channel has a buffer; slow consumers may miss reports.
	// Caller must call Unsubscribe when done to prevent resource leaks.
	Subscribe() <-chan apperr.Report

	// Unsubscribe removes a subscription and closes the channel.
	// Safe to call with a channel that was already unsubscribed.
	Unsubscribe(ch <-chan apperr.Report)
}

var _ apperr.Sink = (*MemoryStore)(nil)

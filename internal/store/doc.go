// Package store keeps the most recent error reports in memory and fans
// them out to subscribers.
//
// It is the in-process stand-in for an external error reporting service:
// the error handler forwards production reports here, and the development
// API exposes them as a JSON snapshot and as a Server-Sent Events stream.
//
// The main components are:
//
//   - [Store]: Interface defining storage and subscription operations
//   - [MemoryStore]: Bounded in-memory implementation of Store with pub/sub
//
// The store is safe for concurrent access. Subscribers receive reports via
// buffered channels with non-blocking sends; slow subscribers miss reports
// rather than block the request that produced them.
package store

// Package counter implements the counter operations as a race-free
// read-modify-write protocol over the store.
//
// Increment runs insert-if-absent, read, compute, write inside a single
// transaction. The leading INSERT ... ON CONFLICT DO NOTHING is the
// serialization point: it guarantees a deterministic starting value of zero
// for new counters and acquires the write lock before the read, so
// concurrent increments on the same name never lose an update. A second
// writer blocks on SQLite's lock until the first commits or rolls back.
//
// All operations are synchronous and run to completion or fail; there is no
// internal concurrency and no automatic retry.
package counter

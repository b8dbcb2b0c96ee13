// Package store provides SQLite-backed durable storage for named counters.
//
// The store owns a single table:
//
//	counter(name TEXT PRIMARY KEY, value INTEGER NOT NULL)
//
// One row per counter name; the absence of a row is distinct from a stored
// zero. The schema is created or upgraded on every open via EnsureSchema,
// versioned with PRAGMA user_version for future migrations.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for cross-process locks up to 5 seconds
//   - Max one open connection: SQLite supports a single writer; the
//     connection cap serializes in-process callers
//
// Cross-process concurrency is delegated entirely to SQLite's file locking.
package store

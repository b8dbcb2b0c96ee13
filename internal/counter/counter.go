package counter

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tallydb/tally/internal/store"
)

// Engine implements the counter operations over one open store.
// It performs no retries: store-level failures propagate to the caller.
type Engine struct {
	st *store.Store
}

// New creates an engine bound to an open store.
func New(st *store.Store) *Engine {
	return &Engine{st: st}
}

// Get reads the stored value for a counter name.
// Returns found=false (not an error) when no row exists - an absent counter
// is distinct from a counter at zero. Single read, no transaction.
func (e *Engine) Get(ctx context.Context, name string) (value int64, found bool, err error) {
	name = CanonicalName(name)

	err = e.st.DB().QueryRowContext(ctx, `
		SELECT value FROM counter WHERE name = ?
	`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, store.NewStoreError("read counter", err)
	}

	return value, true, nil
}

// Increment atomically applies create-if-absent-then-add and returns the
// post-increment value. The amount may be negative or zero; a zero amount
// still creates a missing counter and returns its unchanged value.
//
// With dryRun the new value is computed but not written back. The
// transaction commits even then, so a dry run against a previously missing
// counter durably creates its row at zero - only the increment write is
// skipped. Repeated dry runs therefore return the same value until a real
// increment commits.
func (e *Engine) Increment(ctx context.Context, name string, amount int64, dryRun bool) (int64, error) {
	name = CanonicalName(name)

	tx, err := e.st.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // No-op if committed

	// The insert is the first statement of the transaction, so SQLite takes
	// the write lock at the top of the read-modify-write sequence: the read
	// below always observes the latest committed value and two concurrent
	// increments cannot both read the pre-increment value.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO counter (name, value) VALUES (?, 0)
		ON CONFLICT(name) DO NOTHING
	`, name)
	if err != nil {
		return 0, store.NewStoreError("create counter row", err)
	}

	var current int64
	err = tx.QueryRowContext(ctx, `
		SELECT value FROM counter WHERE name = ?
	`, name).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		// Unreachable after the insert above; checked anyway.
		return 0, store.NewInternalError("cannot create counter")
	}
	if err != nil {
		return 0, store.NewStoreError("read counter", err)
	}

	newValue := current + amount

	if !dryRun {
		_, err = tx.ExecContext(ctx, `
			UPDATE counter SET value = ? WHERE name = ?
		`, newValue, name)
		if err != nil {
			return 0, store.NewStoreError("write counter", err)
		}
	}

	// Commit in dry-run mode too: the insert-or-ignore from above is kept
	// durably, only the value write is skipped.
	if err := tx.Commit(); err != nil {
		return 0, store.NewStoreError("commit increment", err)
	}

	return newValue, nil
}

// Dump returns every stored (name, value) pair. The map carries no ordering.
func (e *Engine) Dump(ctx context.Context) (map[string]int64, error) {
	rows, err := e.st.DB().QueryContext(ctx, `
		SELECT name, value FROM counter
	`)
	if err != nil {
		return nil, store.NewStoreError("query counters", err)
	}
	defer rows.Close()

	counters := make(map[string]int64)
	for rows.Next() {
		var name string
		var value int64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, store.NewStoreError("scan counter row", err)
		}
		counters[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("iterate counters", err)
	}

	return counters, nil
}

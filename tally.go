// Package tally is a durable named-counter store backed by a single SQLite
// file. It increments a named counter by an arbitrary signed amount
// (creating it at zero if absent), reads a counter's current value, and
// dumps all counters - crash-safe, without a separate service.
//
// Two equivalent entry styles are offered: one-shot functions (Get,
// Increment, Dump) that open the store for a single operation, and a
// stateful Client that holds one open store across many operations.
package tally

import (
	"context"

	"github.com/tallydb/tally/internal/counter"
	"github.com/tallydb/tally/internal/store"
)

// MemoryPath is the sentinel path for a transient in-memory store.
const MemoryPath = store.MemoryPath

// DefaultName is the counter name used when none is given.
const DefaultName = counter.DefaultName

// Status classifies the outcome of a one-shot operation.
type Status string

const (
	// StatusOK carries a value in Result.Value.
	StatusOK Status = "ok"

	// StatusNotFound means the counter does not exist. Only Get returns it;
	// absence is a valid result, not an error, and is distinct from zero.
	StatusNotFound Status = "not_found"

	// StatusError carries the failure in Result.Err.
	StatusError Status = "error"
)

// Result is the tri-state outcome of a one-shot Get or Increment.
type Result struct {
	Status Status
	Value  int64
	Err    error
}

// GetConfig configures a one-shot Get.
type GetConfig struct {
	// Path to the database file. Empty means <home>/counter.db;
	// MemoryPath means a transient in-memory store.
	Path string

	// Name of the counter. Empty means DefaultName.
	Name string
}

// IncrementConfig configures a one-shot Increment.
// The zero value increments by zero, which still creates a missing counter;
// use DefaultIncrementConfig for the conventional single increment.
type IncrementConfig struct {
	// Path to the database file. Empty means <home>/counter.db;
	// MemoryPath means a transient in-memory store.
	Path string

	// Name of the counter. Empty means DefaultName.
	Name string

	// Amount is the signed amount to add. May be negative or zero.
	Amount int64

	// DryRun computes the post-increment value without writing it back.
	// A dry run against a missing counter still durably creates its row
	// at zero.
	DryRun bool
}

// DefaultIncrementConfig returns a config incrementing by 1.
func DefaultIncrementConfig() IncrementConfig {
	return IncrementConfig{Amount: 1}
}

// DumpConfig configures a one-shot Dump.
type DumpConfig struct {
	// Path to the database file. Empty means <home>/counter.db;
	// MemoryPath means a transient in-memory store.
	Path string
}

// Get reads a counter's value. It opens the store, performs one read, and
// closes the store; no handle is retained between calls.
func Get(cfg GetConfig) Result {
	var res Result
	err := withStore(cfg.Path, func(eng *counter.Engine) error {
		value, found, err := eng.Get(context.Background(), cfg.Name)
		if err != nil {
			return err
		}
		if !found {
			res = Result{Status: StatusNotFound}
			return nil
		}
		res = Result{Status: StatusOK, Value: value}
		return nil
	})
	if err != nil {
		return Result{Status: StatusError, Err: err}
	}
	return res
}

// Increment applies create-if-absent-then-add and returns the post-increment
// value. It opens the store, performs the one transaction, and closes the
// store; no handle is retained between calls.
func Increment(cfg IncrementConfig) Result {
	var res Result
	err := withStore(cfg.Path, func(eng *counter.Engine) error {
		value, err := eng.Increment(context.Background(), cfg.Name, cfg.Amount, cfg.DryRun)
		if err != nil {
			return err
		}
		res = Result{Status: StatusOK, Value: value}
		return nil
	})
	if err != nil {
		return Result{Status: StatusError, Err: err}
	}
	return res
}

// Dump returns every stored (name, value) pair. The map carries no ordering.
func Dump(cfg DumpConfig) (map[string]int64, error) {
	var counters map[string]int64
	err := withStore(cfg.Path, func(eng *counter.Engine) error {
		var err error
		counters, err = eng.Dump(context.Background())
		return err
	})
	if err != nil {
		return nil, err
	}
	return counters, nil
}

// withStore resolves the path, opens the store for one operation, and
// closes it afterwards. Errors from the store and schema layer propagate
// unchanged.
func withStore(path string, fn func(*counter.Engine) error) error {
	resolved, err := store.ResolvePath(path)
	if err != nil {
		return err
	}

	st, err := store.Open(resolved)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(counter.New(st))
}

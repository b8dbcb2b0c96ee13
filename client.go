package tally

import (
	"context"

	"github.com/tallydb/tally/internal/counter"
	"github.com/tallydb/tally/internal/store"
)

// Client is the stateful entry style: it opens one store bound to one
// database path at construction and retains it across operations until
// Close. Operations serialize on the store's single connection, so a Client
// may be shared by multiple goroutines.
//
// Client deliberately offers no dry-run mode - a simplification, not an
// oversight. Use the one-shot Increment function when a dry run is needed.
type Client struct {
	st  *store.Store
	eng *counter.Engine
}

// NewClient opens (or creates) the store at path and returns a client bound
// to it. An empty path means <home>/counter.db; MemoryPath means a transient
// in-memory store. A store that cannot be opened fails construction - the
// error is not deferred to first use.
func NewClient(path string) (*Client, error) {
	resolved, err := store.ResolvePath(path)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(resolved)
	if err != nil {
		return nil, err
	}

	return &Client{st: st, eng: counter.New(st)}, nil
}

// Increment adds amount to the named counter, creating it at zero first if
// absent, and returns the new value. An empty name means DefaultName.
func (c *Client) Increment(name string, amount int64) (int64, error) {
	return c.eng.Increment(context.Background(), name, amount, false)
}

// Get reads the named counter. Returns found=false when it does not exist.
// An empty name means DefaultName.
func (c *Client) Get(name string) (value int64, found bool, err error) {
	return c.eng.Get(context.Background(), name)
}

// Dump returns every stored (name, value) pair.
func (c *Client) Dump() (map[string]int64, error) {
	return c.eng.Dump(context.Background())
}

// Close releases the underlying store.
func (c *Client) Close() error {
	return c.st.Close()
}

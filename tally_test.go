package tally_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallydb/tally"
	"github.com/tallydb/tally/internal/store"
)

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "counter.db")
}

func TestIncrement_OneShot(t *testing.T) {
	path := tempDB(t)

	cfg := tally.DefaultIncrementConfig()
	cfg.Path = path
	cfg.Name = "web"

	res := tally.Increment(cfg)
	require.Equal(t, tally.StatusOK, res.Status, "unexpected error: %v", res.Err)
	assert.Equal(t, int64(1), res.Value)

	// No handle is retained: a second call reopens the same file
	res = tally.Increment(cfg)
	require.Equal(t, tally.StatusOK, res.Status)
	assert.Equal(t, int64(2), res.Value)
}

func TestIncrement_DefaultConfigAddsOne(t *testing.T) {
	cfg := tally.DefaultIncrementConfig()
	assert.Equal(t, int64(1), cfg.Amount)
	assert.False(t, cfg.DryRun)
}

func TestIncrement_DryRunOneShot(t *testing.T) {
	path := tempDB(t)

	res := tally.Increment(tally.IncrementConfig{Path: path, Name: "n", Amount: 4, DryRun: true})
	require.Equal(t, tally.StatusOK, res.Status)
	assert.Equal(t, int64(4), res.Value)

	// Only the zero row was persisted
	got := tally.Get(tally.GetConfig{Path: path, Name: "n"})
	require.Equal(t, tally.StatusOK, got.Status)
	assert.Equal(t, int64(0), got.Value)
}

func TestGet_NotFound(t *testing.T) {
	res := tally.Get(tally.GetConfig{Path: tempDB(t), Name: "nobody"})
	assert.Equal(t, tally.StatusNotFound, res.Status)
	assert.NoError(t, res.Err)
}

func TestGet_StoreErrorSurfaces(t *testing.T) {
	res := tally.Get(tally.GetConfig{Path: "/nonexistent/dir/counter.db"})
	require.Equal(t, tally.StatusError, res.Status)
	assert.True(t, store.IsStore(res.Err), "expected STORE_ERROR, got %v", res.Err)
}

func TestDump_OneShot(t *testing.T) {
	path := tempDB(t)

	for name, amount := range map[string]int64{"a": 3, "b": -1} {
		res := tally.Increment(tally.IncrementConfig{Path: path, Name: name, Amount: amount})
		require.Equal(t, tally.StatusOK, res.Status)
	}

	counters, err := tally.Dump(tally.DumpConfig{Path: path})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 3, "b": -1}, counters)
}

func TestClient_Lifecycle(t *testing.T) {
	client, err := tally.NewClient(tempDB(t))
	require.NoError(t, err)
	defer client.Close()

	value, err := client.Increment("jobs", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), value)

	value, err = client.Increment("jobs", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), value)

	got, found, err := client.Get("jobs")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(5), got)

	_, found, err = client.Get("other")
	require.NoError(t, err)
	assert.False(t, found)

	counters, err := client.Dump()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"jobs": 5}, counters)

	require.NoError(t, client.Close())
}

func TestClient_InMemory(t *testing.T) {
	client, err := tally.NewClient(tally.MemoryPath)
	require.NoError(t, err)
	defer client.Close()

	value, err := client.Increment("", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), value)

	got, found, err := client.Get(tally.DefaultName)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(1), got)
}

func TestNewClient_OpenFailureIsFatal(t *testing.T) {
	_, err := tally.NewClient("/nonexistent/dir/counter.db")
	require.Error(t, err, "construction must fail, not defer the error to first use")
	assert.True(t, store.IsStore(err))
}

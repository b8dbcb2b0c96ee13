package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommand_ExistingCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.db")

	_, err := execute(t, "inc", path, "hits", "-i", "7")
	require.NoError(t, err)

	out, err := execute(t, "get", path, "hits")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestGetCommand_MissingCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.db")

	out, err := execute(t, "get", path, "nobody")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, GetExitCode(err))
	assert.Empty(t, out, "missing counter must print nothing")
	assert.Empty(t, err.Error(), "missing counter must not print an error message")
}

func TestGetCommand_MissingIsNotZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.db")

	// A counter stored at zero is found
	_, err := execute(t, "inc", path, "zeroed", "-i", "0")
	require.NoError(t, err)

	out, err := execute(t, "get", path, "zeroed")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestGetCommand_BadPath(t *testing.T) {
	_, err := execute(t, "get", "/nonexistent/dir/c.db", "x")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetCommand_Alias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.db")

	_, err := execute(t, "inc", path)
	require.NoError(t, err)

	out, err := execute(t, "get-counter", path)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

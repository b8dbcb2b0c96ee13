package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "tally", cmd.Name())
	assert.Contains(t, cmd.Short, "SQLite")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"inc", "get", "dump"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestCommandAliases(t *testing.T) {
	cmd := NewRootCommand()

	incCmd, _, err := cmd.Find([]string{"increment-counter"})
	require.NoError(t, err)
	assert.Equal(t, "inc", incCmd.Name())

	getCmd, _, err := cmd.Find([]string{"get-counter"})
	require.NoError(t, err)
	assert.Equal(t, "get", getCmd.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
}

func TestIncCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	incCmd, _, err := cmd.Find([]string{"inc"})
	require.NoError(t, err)

	incrementFlag := incCmd.Flags().Lookup("increment")
	require.NotNil(t, incrementFlag)
	assert.Equal(t, "i", incrementFlag.Shorthand)
	assert.Equal(t, "1", incrementFlag.DefValue)

	dryRunFlag := incCmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRunFlag)
	assert.Equal(t, "false", dryRunFlag.DefValue)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "invalid", "dump", ":memory:"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestResolvePathAndName(t *testing.T) {
	opts := &RootOptions{Config: FileConfig{Database: "/cfg/db", Counter: "cfgname"}}

	// Positional arguments win over config
	assert.Equal(t, "/a/b.db", opts.resolvePath([]string{"/a/b.db", "n"}))
	assert.Equal(t, "n", opts.resolveName([]string{"/a/b.db", "n"}))

	// Config wins over built-in defaults
	assert.Equal(t, "/cfg/db", opts.resolvePath(nil))
	assert.Equal(t, "cfgname", opts.resolveName(nil))

	// Nothing set: empty, resolved downstream
	empty := &RootOptions{}
	assert.Equal(t, "", empty.resolvePath(nil))
	assert.Equal(t, "", empty.resolveName(nil))
}

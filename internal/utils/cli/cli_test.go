package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlag_PersistentBool(t *testing.T) {
	// Arrange
	var quiet bool
	cmd := &cobra.Command{}

	// Act
	RegisterFlag(cmd, true, "quiet", "q", false, "Plain output", &quiet)

	// Assert
	flag := cmd.PersistentFlags().Lookup("quiet")
	require.NotNil(t, flag)
	assert.Equal(t, "q", flag.Shorthand)
	assert.Equal(t, "Plain output (default false)", flag.Usage)
	assert.Equal(t, "false", flag.DefValue)
	assert.Nil(t, cmd.LocalNonPersistentFlags().Lookup("quiet"))
}

func TestRegisterFlag_LocalString(t *testing.T) {
	var channel string
	cmd := &cobra.Command{}

	RegisterFlag(cmd, false, "channel", "c", "stable", "Release channel", &channel)

	flag := cmd.Flags().Lookup("channel")
	require.NotNil(t, flag)
	assert.Equal(t, "Release channel", flag.Usage)
	assert.Equal(t, "stable", flag.DefValue)
	assert.Nil(t, cmd.PersistentFlags().Lookup("channel"))

	require.NoError(t, cmd.Flags().Set("channel", "beta"))
	assert.Equal(t, "beta", channel)
}

func TestRegisterFlag_BoolDefaultTrue(t *testing.T) {
	var enabled bool
	cmd := &cobra.Command{}

	RegisterFlag(cmd, false, "enabled", "e", true, "Enable feature", &enabled)

	flag := cmd.Flags().Lookup("enabled")
	require.NotNil(t, flag)
	assert.Equal(t, "Enable feature", flag.Usage)
	assert.Equal(t, "true", flag.DefValue)
}

func TestRegisterFlag_Panics(t *testing.T) {
	cmd := &cobra.Command{}
	var s string
	var n int

	assert.PanicsWithValue(t, "flag x: default is not a string", func() {
		RegisterFlag(cmd, false, "x", "", true, "", &s)
	})
	assert.PanicsWithValue(t, "flag y: unsupported target type", func() {
		RegisterFlag(cmd, false, "y", "", 1, "", &n)
	})
	assert.PanicsWithValue(t, "flag z: unsupported target type", func() {
		RegisterFlag(cmd, false, "z", "", "v", "", s)
	})
}

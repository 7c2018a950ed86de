package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunReturnsConfigError(t *testing.T) {
	t.Setenv("INSPECTOR_HOME", t.TempDir())
	t.Setenv("INSPECTOR_LIST_MAX_ROWS", "0")

	err := run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
	require.Contains(t, err.Error(), "list.max_rows")
}

func TestRootCommandReturnsErrors(t *testing.T) {
	require.NotNil(t, rootCmd.RunE)
	require.Nil(t, rootCmd.Run)
}

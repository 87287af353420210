package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHost_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body></body></html>"), 0644))

	data, err := readHost([]string{path})

	require.NoError(t, err)
	assert.Equal(t, "<html><body></body></html>", string(data))
}

func TestReadHost_MissingFile(t *testing.T) {
	_, err := readHost([]string{"/nonexistent/host.html"})
	assert.Error(t, err)
}

func TestWriteOutput_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")

	require.NoError(t, writeOutput(path, "<html></html>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestRootCommand_Flags(t *testing.T) {
	for _, flag := range []string{
		"base-url", "container", "container-id", "mount-strategy",
		"manifest-path", "show-errors", "verify-assets", "entry-prefix",
		"timeout", "user-agent", "profile", "config",
	} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
	assert.NotNil(t, rootCmd.Flags().Lookup("output"))
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	rootCmd := newRootCmd()

	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "list-tests")
	assert.Contains(t, names, "cat-test")
}

func TestNewRootCmd_ListTests(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "x_alpha_1.log"), []byte("GET /"), 0644))

	rootCmd := newRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list-tests", "--in-path", root, "--json", "--no-color"})

	require.NoError(t, rootCmd.Execute())
	assert.JSONEq(t, `{"rows":[{"test_name":"alpha","found_count":1}],"total":1}`, out.String())
}

func TestNewRootCmd_EmptyInPath(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"list-tests", "--in-path", ""})

	assert.ErrorContains(t, rootCmd.Execute(), "in-path must not be empty")
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile, outputFile, metricsFile, verbose = "", "", "", false
	rootCmd.SilenceUsage = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootRequiresTwoArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "none", args: []string{}},
		{name: "one", args: []string{"catalog.json"}},
		{name: "three", args: []string{"a.json", "b.json", "c.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, out, "Usage:")
		})
	}
}

func TestRootComputesAndWritesResults(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.json")
	salesPath := filepath.Join(dir, "sales.json")
	outputPath := filepath.Join(dir, "SalesResults.txt")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`[{"title":"Widget","price":10}]`), 0644))
	require.NoError(t, os.WriteFile(salesPath, []byte(`[{"Product":"Gadget","Quantity":2}]`), 0644))

	out, err := execute(t, "--output", outputPath, catalogPath, salesPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Total: $0.00")
	assert.Contains(t, out, "Warnings:\nNot found: Gadget\n")

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, out, string(data))
}

func TestRootLoadFailure(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "SalesResults.txt")
	salesPath := filepath.Join(dir, "sales.json")
	require.NoError(t, os.WriteFile(salesPath, []byte(`[]`), 0644))

	out, err := execute(t, "--output", outputPath, filepath.Join(dir, "missing.json"), salesPath)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "error loading")
	assert.NotContains(t, out, "Usage:")
	assert.NoFileExists(t, outputPath)
}

func TestRootBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "compute-sales.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: loud\n"), 0644))

	_, err := execute(t, "--config", cfgPath, "a.json", "b.json")
	assert.ErrorContains(t, err, "log_level")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    "+Version)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configPath, csvPath, plotPath, pdfPath, workers = "", "", "", "", 0
	})
	err := rootCmd.Execute()

	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lineprof dev\n", out)
}

func TestRun_StdoutCSV(t *testing.T) {
	out, err := execute(t, "run", "--config", filepath.Join("..", "..", "config", "testdata", "cloud.yaml"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "velocity_kms,tb_k,intensity", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "-500,"))
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "p.csv")
	png := filepath.Join(dir, "p.png")
	pdf := filepath.Join(dir, "p.pdf")

	_, err := execute(t, "run", "-c", filepath.Join("..", "..", "config", "testdata", "cloud.yaml"),
		"--csv", csv, "--plot", png, "--pdf", pdf, "-j", "1")
	require.NoError(t, err)

	for _, path := range []string{csv, png, pdf} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

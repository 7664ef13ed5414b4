package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeParams(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestList(t *testing.T) {
	code, out, _ := runCmd(t, "-list")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "IIRFilter")
	assert.Contains(t, out, "PeakInBand")
	assert.Contains(t, out, "indicator")
}

func TestDocs(t *testing.T) {
	code, out, _ := runCmd(t, "normalize")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Normalize (filter)")
	assert.Contains(t, out, "norm_method")
	assert.Contains(t, out, "standard")

	code, out, _ = runCmd(t, "Mean")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "no parameters")
}

func TestUnknownAlgorithm(t *testing.T) {
	code, _, errOut := runCmd(t, "Smooth")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown algorithm")
}

func TestResolveParamsFile(t *testing.T) {
	path := writeParams(t, "fp: [5]\nfs: [15]\nftype: ellip\nloss: 1\n")

	code, out, _ := runCmd(t, "-params", path, "-rate", "100", "IIRFilter")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "IIRFilter: ok")
	assert.Contains(t, out, "ellip")
	assert.Contains(t, out, "att")
	assert.Contains(t, out, "second-order sections")
}

func TestResolveParamsFileErrors(t *testing.T) {
	path := writeParams(t, "norm_method: custom\nnorm_range: 2\n")

	code, out, _ := runCmd(t, "-params", path, "Normalize")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, `"norm_bias" is missing`)

	code, _, errOut := runCmd(t, "-params", filepath.Join(t.TempDir(), "missing.yaml"), "Diff")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "error:")
}

func TestDesignReportsUnsatisfiable(t *testing.T) {
	path := writeParams(t, "fp: [40]\nfs: [60]\n")

	code, out, _ := runCmd(t, "-params", path, "-rate", "100", "IIRFilter")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "cannot be met")
}

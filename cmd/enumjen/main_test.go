package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestRunCSV(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "stocks.csv")
	writeFile(t, src, "exchange, ticker\nnyse, ibm\nnasdaq, aapl\n")

	err := run([]string{"enumjen", "--log-level", "error", "--outdir", dir, "csv", src, "stocks"})
	require.NoError(t, err)

	got := readFile(t, filepath.Join(dir, "stocks.ts"))
	assert.Contains(t, got, "const enum exchange {\n  NYSE = \"nyse\",\n  NASDAQ = \"nasdaq\",\n}\n")
	assert.Contains(t, got, "const enum ticker {\n  IBM = \"ibm\",\n  AAPL = \"aapl\",\n}\n")
	assert.Contains(t, got, "export { exchange, ticker };\n")
}

func TestRunJSONWithHeader(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in", "countries.json")
	writeFile(t, src, `{"us": "United States", "fr": "France"}`)

	err := run([]string{"enumjen", "--log-level", "error", "--outdir", dir, "--header", "generated", "json", src, "Country"})
	require.NoError(t, err)

	assert.Equal(t, "// generated\n\nconst enum Country {\n  US = \"United States\",\n  FR = \"France\",\n}\n\nexport default Country;\n",
		readFile(t, filepath.Join(dir, "Country.ts")))
}

func TestRunList(t *testing.T) {
	dir := t.TempDir()

	err := run([]string{"enumjen", "--log-level", "error", "--outdir", dir, "list", "Direction", "north", "south"})
	require.NoError(t, err)
	assert.Equal(t, "const enum Direction {\n  NORTH = \"north\",\n  SOUTH = \"south\",\n}\n\nexport default Direction;\n",
		readFile(t, filepath.Join(dir, "Direction.ts")))

	err = run([]string{"enumjen", "--outdir", dir, "list", "Direction"})
	assert.Error(t, err)
}

func TestRunVerify(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "colors.yaml")
	writeFile(t, src, "- red\n- green\n")

	args := []string{"enumjen", "--log-level", "error", "--outdir", dir}
	err := run(append(args, "--verify", "yaml", src, "Color"))
	assert.ErrorContains(t, err, "should exist")

	require.NoError(t, run(append(args, "yaml", src, "Color")))
	require.NoError(t, run(append(args, "--verify", "yaml", src, "Color")))

	writeFile(t, src, "- red\n- blue\n")
	err = run(append(args, "--verify", "yaml", src, "Color"))
	assert.ErrorContains(t, err, "would have changed")
}

func TestRunNoClobber(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Color.ts"), "hand written\n")

	err := run([]string{"enumjen", "--log-level", "error", "--outdir", dir, "--no-clobber", "list", "Color", "red"})
	assert.ErrorContains(t, err, "already exists")
	assert.Equal(t, "hand written\n", readFile(t, filepath.Join(dir, "Color.ts")))
}

func TestRunBadArgs(t *testing.T) {
	dir := t.TempDir()

	assert.Error(t, run([]string{"enumjen", "json", filepath.Join(dir, "only-one-arg.json")}))
	assert.Error(t, run([]string{"enumjen", "--log-level", "loud", "list", "X", "y"}))
	assert.Error(t, run([]string{"enumjen", "--log-format", "xml", "list", "X", "y"}))
	assert.ErrorContains(t, run([]string{"enumjen", "--log-level", "error", "csv", filepath.Join(dir, "x.txt"), "X"}), "invalid file type")
}

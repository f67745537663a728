package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pssmlab/loorun/internal/cli"
)

func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := cli.Execute(context.Background(), args, &stdout, &stderr)

	return code, stderr.String()
}

func TestExecuteMissingDataset(t *testing.T) {
	t.Parallel()

	code, stderr := execute(t, "--items", "CDC7,YSK4")
	assert.Equal(t, cli.ExitConfig, code)
	assert.Contains(t, stderr, "dataset")
}

func TestExecuteTooFewItems(t *testing.T) {
	t.Parallel()

	code, _ := execute(t, "--dataset", "pssms", "--items", "CDC7")
	assert.Equal(t, cli.ExitConfig, code)
}

func TestExecuteDuplicateItems(t *testing.T) {
	t.Parallel()

	code, _ := execute(t, "--dataset", "pssms", "--items", "CDC7,CDC7")
	assert.Equal(t, cli.ExitConfig, code)
}

func TestExecuteBadConfigFile(t *testing.T) {
	t.Parallel()

	code, _ := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, cli.ExitConfig, code)
}

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700))

	return path
}

const searchScript = `out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-o" ]; then out="$2"; fi
  shift
done
printf 'ID SCORE\nPEP1 0.9\nPEP2 0.5\n' > "$out"
`

const plotScript = `out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-o" ]; then out="$2"; fi
  shift
done
: > "$out"
`

func TestExecuteEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o750))

	searchCmd := writeScript(t, dir, "search.sh", searchScript)
	plotCmd := writeScript(t, dir, "plot.sh", plotScript)

	code, stderr := execute(t,
		"--dataset", dir,
		"--output-dir", outDir,
		"--items", "CDC7,YSK4,NEK11,CHAK1",
		"--search-cmd", searchCmd,
		"--plot-cmd", plotCmd,
		"--draw", filepath.Join(outDir, "plan.gv"),
		"--measure",
	)
	require.Equal(t, cli.ExitOK, code, stderr)

	for _, item := range []string{"CDC7", "YSK4", "NEK11", "CHAK1"} {
		assert.FileExists(t, filepath.Join(outDir, item+".txt"))
		assert.FileExists(t, filepath.Join(outDir, item+".pdf"))
	}
	assert.FileExists(t, filepath.Join(outDir, "plan.gv"))
}

func TestExecuteFlagOverridesConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o750))

	// The search script logs its argument vector before doing its job, so
	// the test can see exactly what the builders produced.
	argsLog := filepath.Join(dir, "args.log")
	searchCmd := writeScript(t, dir, "search.sh",
		`printf '%s\n' "$*" >> "`+argsLog+`"`+"\n"+searchScript)
	plotCmd := writeScript(t, dir, "plot.sh", plotScript)

	configYAML := "dataset: " + dir + "\n" +
		"output_dir: " + outDir + "\n" +
		"items: [CDC7, YSK4]\n" +
		"threshold: 0.01\n" +
		"max_results: 50\n" +
		"search_cmd: " + searchCmd + "\n" +
		"plot_cmd: " + plotCmd + "\n"
	configPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o600))

	code, stderr := execute(t,
		"--config", configPath,
		"--threshold", "0.2",
	)
	require.Equal(t, cli.ExitOK, code, stderr)

	raw, err := os.ReadFile(argsLog)
	require.NoError(t, err)
	logged := string(raw)

	// The flag wins over the config file value.
	assert.Contains(t, logged, "-p 0.2")
	assert.NotContains(t, logged, "-p 0.01")
	// Config values without a conflicting flag survive the overlay.
	assert.Contains(t, logged, "-n 50")
	assert.Contains(t, logged, "-d "+dir)
}

func TestExecuteFailingJobExitCode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	searchCmd := writeScript(t, dir, "search.sh", "exit 1\n")
	plotCmd := writeScript(t, dir, "plot.sh", "exit 0\n")

	code, _ := execute(t,
		"--dataset", dir,
		"--output-dir", dir,
		"--items", "CDC7,YSK4",
		"--search-cmd", searchCmd,
		"--plot-cmd", plotCmd,
	)
	assert.Equal(t, cli.ExitFailure, code)
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/advent2024/internal/output"
	"github.com/danmuck/advent2024/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeInputs(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	inputs := map[string]string{
		"day01.txt": "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n",
		"day02.txt": "7 6 4 2 1\n1 2 7 8 9\n9 7 6 2 1\n1 3 2 4 5\n8 6 4 4 1\n1 3 6 7 9\n",
		"day03.txt": "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))",
	}
	for name, body := range inputs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "advent.toml")
}

func TestRunTextOutput(t *testing.T) {
	testlog.Start(t)
	dir := writeInputs(t)
	out, err := execute(t, "run", "1", "--config", missingConfig(t), "--input-dir", dir, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "Advent of code 2024 day 1\nPart 1: 11\nPart 2: 31\n", out)
}

func TestRunAllDaysJSON(t *testing.T) {
	testlog.Start(t)
	dir := writeInputs(t)
	out, err := execute(t, "run", "-c", missingConfig(t), "-i", dir, "-f", "json", "--parallel")
	require.NoError(t, err)

	var views []output.ReportView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 3)
	got := [][2]int{}
	for _, v := range views {
		got = append(got, [2]int{v.PartOne.Value, v.PartTwo.Value})
	}
	assert.Equal(t, [][2]int{{11, 31}, {2, 4}, {161, 48}}, got)
}

func TestRunCreatesMissingInput(t *testing.T) {
	testlog.Start(t)
	dir := filepath.Join(t.TempDir(), "fresh")
	out, err := execute(t, "run", "2", "-c", missingConfig(t), "-i", dir, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Part 1: 0")
	assert.FileExists(t, filepath.Join(dir, "day02.txt"))
}

func TestRunUnknownDay(t *testing.T) {
	testlog.Start(t)
	_, err := execute(t, "run", "17", "-c", missingConfig(t), "-i", t.TempDir())
	assert.Error(t, err)
	_, err = execute(t, "run", "one", "-c", missingConfig(t), "-i", t.TempDir())
	assert.Error(t, err)
}

func TestRunUsesConfigFile(t *testing.T) {
	testlog.Start(t)
	dir := writeInputs(t)
	cfgPath := filepath.Join(t.TempDir(), "advent.toml")
	body := "input_dir = \"" + filepath.ToSlash(dir) + "\"\nformat = \"yaml\"\ndays = [3]\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	out, err := execute(t, "run", "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "id: day03")
	assert.Contains(t, out, "value: 161")
	assert.NotContains(t, out, "day01")
}

func TestList(t *testing.T) {
	testlog.Start(t)
	out, err := execute(t, "list", "-c", missingConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "day01")
	assert.Contains(t, out, "Mull It Over")
}

func TestConfigInitShowValidate(t *testing.T) {
	testlog.Start(t)
	cfgPath := missingConfig(t)

	_, err := execute(t, "config", "validate", "-c", cfgPath)
	assert.Error(t, err)

	out, err := execute(t, "config", "init", "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, cfgPath)

	_, err = execute(t, "config", "init", "-c", cfgPath)
	assert.Error(t, err)

	out, err = execute(t, "config", "validate", "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Validated")

	out, err = execute(t, "config", "show", "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "input_dir")
	assert.Contains(t, out, "250ms")
}

func TestRunMetricsOut(t *testing.T) {
	testlog.Start(t)
	dir := writeInputs(t)
	metricsPath := filepath.Join(t.TempDir(), "advent.prom")
	_, err := execute(t, "run", "3", "-c", missingConfig(t), "-i", dir, "--metrics-out", metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `puzzle="day03"`)
}

func TestConfigInitForceReplacesBrokenConfig(t *testing.T) {
	testlog.Start(t)
	cfgPath := missingConfig(t)
	require.NoError(t, os.WriteFile(cfgPath, []byte("format = \"xml\"\nbogus = 1\n"), 0o644))

	_, err := execute(t, "config", "validate", "-c", cfgPath)
	require.Error(t, err)

	_, err = execute(t, "config", "init", "-c", cfgPath)
	assert.Error(t, err, "init without --force must not overwrite")

	_, err = execute(t, "config", "init", "--force", "-c", cfgPath)
	require.NoError(t, err)

	out, err := execute(t, "config", "validate", "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Validated")
}

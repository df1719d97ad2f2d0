package golden

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	scenarios, err := LoadDir("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	runner := NewRunner(false)
	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			result, err := runner.Run(sc)
			require.NoError(t, err)
			assert.Equal(t, StatusPassed, result.Status, result.Diff)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - input: list\n    output: Store is empty\n"), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "unnamed", sc.Name)
	assert.Equal(t, []string{"list"}, sc.Inputs())
	assert.Equal(t, path, sc.Path)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("name: empty\n"), 0o644))
	_, err := Load(empty)
	assert.ErrorContains(t, err, "has no steps")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("steps: [\n"), 0o644))
	_, err = Load(broken)
	assert.ErrorContains(t, err, "failed to parse scenario")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestExecute_StopsAtExit(t *testing.T) {
	steps := Execute([]string{"set a 1", "exit", "get a"})
	require.Len(t, steps, 2)
	assert.Equal(t, "Exiting...", steps[1].Output)
}

func TestTranscript(t *testing.T) {
	got := Transcript([]Step{
		{Input: "list", Output: "Store is empty"},
		{Input: "", Output: ""},
	})
	assert.Equal(t, "> list\nStore is empty\n> \n", got)
}

func TestDiff(t *testing.T) {
	assert.Empty(t, Diff("a\nb\n", "a\nb\n"))

	d := Diff("a\nb\nc\n", "a\nB\nc\n")
	assert.Contains(t, d, "  a\n")
	assert.Contains(t, d, "- b\n")
	assert.Contains(t, d, "+ B\n")
	assert.Contains(t, d, "  c\n")
}

func TestRunner_FailsOnMismatch(t *testing.T) {
	sc := &Scenario{
		Name:  "wrong",
		Steps: []Step{{Input: "list", Output: "Keys: nothing"}},
	}

	result, err := NewRunner(false).Run(sc)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
	assert.Contains(t, result.Diff, "- Keys: nothing")
	assert.Contains(t, result.Diff, "+ Store is empty")
}

func TestRunner_Update(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.yaml")
	sc := &Scenario{
		Name:  "rec",
		Path:  path,
		Steps: []Step{{Input: "set a 1"}, {Input: "get a"}},
	}

	result, err := NewRunner(true).Run(sc)
	require.NoError(t, err)
	assert.Equal(t, StatusUpdated, result.Status)

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Value for key 'a': 'Integer(1)'", reloaded.Steps[1].Output)

	result, err = NewRunner(false).Run(reloaded)
	require.NoError(t, err)
	assert.Equal(t, StatusPassed, result.Status)
}

func TestRunner_SkipsUnsatisfiedVersion(t *testing.T) {
	sc := &Scenario{Name: "future", Requires: ">= 99.0.0", Steps: []Step{{Input: "list"}}}
	result, err := NewRunner(false).Run(sc)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, result.Status)

	sc.Requires = "not a constraint"
	_, err = NewRunner(false).Run(sc)
	assert.Error(t, err)
}

func TestRunner_RunAll(t *testing.T) {
	scenarios := []*Scenario{
		{Name: "ok", Steps: []Step{{Input: "list", Output: "Store is empty"}}},
		{Name: "bad", Steps: []Step{{Input: "list", Output: "Keys: x"}}},
	}

	var buf bytes.Buffer
	err := NewRunner(false).RunAll(scenarios, &buf)
	assert.EqualError(t, err, "scenarios failed: bad")
	assert.Contains(t, buf.String(), "PASS ok")
	assert.Contains(t, buf.String(), "FAIL bad")
	assert.Contains(t, buf.String(), "Results: 1 passed, 1 failed, 0 skipped, 0 updated")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "PASS", StatusPassed.String())
	assert.Equal(t, "FAIL", StatusFailed.String())
	assert.Equal(t, "SKIP", StatusSkipped.String())
	assert.Equal(t, "UPDATE", StatusUpdated.String())
}

package cmd

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devsetup/internal/selection"
	"devsetup/internal/task"
)

func TestPromptModeMapping(t *testing.T) {
	cases := map[string]selection.Mode{
		"1\n":      selection.ModeAll,
		"2\n":      selection.ModeManual,
		"3\n":      selection.ModeExit,
		"q\n":      selection.ModeExit,
		"exit\n":   selection.ModeExit,
		"7\n":      selection.Mode("7"),
		"banana\n": selection.Mode("banana"),
	}
	for input, want := range cases {
		got := promptMode(bufio.NewReader(strings.NewReader(input)))
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestCollectResponses(t *testing.T) {
	noop := task.RunnerFunc(func() error { return nil })
	cat, err := task.New(
		task.Task{Action: noop},
		[]task.Task{
			{Name: "git", Label: "Git", Action: noop},
			{Name: "go", Label: "Go toolchain", Action: noop},
		},
		task.Task{Action: noop},
	)
	require.NoError(t, err)

	// First answer is the top-level update prompt, then one per tool.
	in := bufio.NewReader(strings.NewReader("y\nn\ny\n"))
	responses := collectResponses(in, cat)

	assert.Equal(t, map[string]string{
		task.UpdateName: "y",
		"git":           "n",
		"go":            "y",
	}, responses)
}

// writeTestConfig points the package-level config/state paths at a config
// whose hooks and tasks are side-effect-free shell commands.
func writeTestConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.yaml")
	statePath = filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
}

const harmlessConfig = `
shell: bash
update:
  commands: ["true"]
cleanup:
  commands: ["true"]
tasks:
  - name: alpha
    label: Alpha
    commands: ["true"]
  - name: beta
    label: Beta
    commands: ["false"]
`

func TestRunInstallExitChoice(t *testing.T) {
	writeTestConfig(t, harmlessConfig)
	t.Setenv("HOME", t.TempDir())

	code := runInstall(strings.NewReader("3\n"))
	assert.Equal(t, exitOK, code)
}

func TestRunInstallUnknownModeExitsNonZero(t *testing.T) {
	writeTestConfig(t, harmlessConfig)
	t.Setenv("HOME", t.TempDir())

	code := runInstall(strings.NewReader("banana\n"))
	assert.Equal(t, exitBadSelection, code)
}

func TestRunInstallManualDecliningFailingTask(t *testing.T) {
	writeTestConfig(t, harmlessConfig)
	t.Setenv("HOME", t.TempDir())

	// Manual mode: decline update, install alpha, decline the failing beta.
	code := runInstall(strings.NewReader("2\nn\ny\nn\n"))
	assert.Equal(t, exitOK, code)
}

func TestRunInstallFailFastExitsNonZero(t *testing.T) {
	writeTestConfig(t, harmlessConfig)
	t.Setenv("HOME", t.TempDir())

	// Install everything: beta's action fails, so the run aborts.
	code := runInstall(strings.NewReader("1\n"))
	assert.Equal(t, exitRunFailed, code)
}

func TestRunInstallMissingConfig(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "nope.yaml")
	t.Setenv("HOME", t.TempDir())

	code := runInstall(strings.NewReader("1\n"))
	assert.Equal(t, exitRunFailed, code)
}

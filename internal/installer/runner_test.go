package installer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devsetup/internal/config"
	"devsetup/internal/shellenv"
	"devsetup/internal/state"
	"devsetup/internal/task"
)

func TestRunCommands(t *testing.T) {
	require.NoError(t, runCommands([]string{"true", "true"}))

	err := runCommands([]string{"true", "false", "true"})
	require.ErrorContains(t, err, `command "false" failed`)
}

func TestToolRunnerSkipsCurrentVersion(t *testing.T) {
	st := &state.State{Tools: map[string]state.ToolState{
		"go": {Version: "1.24.0", InstallPath: "/usr/local/go/bin/go"},
	}}

	installed := false
	r := &toolRunner{
		spec:      config.TaskSpec{Name: "go", Version: "1.24.0"},
		st:        st,
		statePath: filepath.Join(t.TempDir(), "state.json"),
		install: func() (string, error) {
			installed = true
			return "", nil
		},
	}

	require.NoError(t, r.Run())
	assert.False(t, installed, "a recorded current version must not be reinstalled")
}

func TestToolRunnerRecordsStateAndExportsPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PATH", "/usr/bin")
	statePath := filepath.Join(t.TempDir(), "state.json")

	st := state.Load(statePath)
	r := &toolRunner{
		spec: config.TaskSpec{
			Name:      "go",
			Version:   "1.24.0",
			PathEntry: "/usr/local/go/bin",
		},
		env:       shellenv.New(shellenv.Config{HomeDir: home, Shell: "bash"}),
		st:        st,
		statePath: statePath,
		install: func() (string, error) {
			return "/usr/local/go/bin/go", nil
		},
	}

	require.NoError(t, r.Run())

	reloaded := state.Load(statePath)
	assert.Equal(t, "1.24.0", reloaded.Tools["go"].Version)
	assert.Equal(t, "/usr/local/go/bin/go", reloaded.Tools["go"].InstallPath)

	rc, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)
	assert.Contains(t, string(rc), `export PATH="$PATH:/usr/local/go/bin"`)
	assert.Contains(t, os.Getenv("PATH"), "/usr/local/go/bin")
}

func TestBuildCatalogOrderMatchesConfig(t *testing.T) {
	cfg := &config.Config{
		BinDir:  t.TempDir(),
		Update:  config.Hook{Label: "Update", Commands: []string{"true"}},
		Cleanup: config.Hook{Label: "Cleanup", Commands: []string{"true"}},
		Tasks: []config.TaskSpec{
			{Name: "git", Label: "Git", Source: "commands", Commands: []string{"true"}},
			{Name: "lazygit", Source: "github", Repo: "jesseduffield/lazygit", Tag: "v0.44.1"},
			{Name: "kubectl", Source: "url", URL: "https://example.com/kubectl"},
		},
	}
	st := state.Load(filepath.Join(t.TempDir(), "state.json"))
	env := shellenv.New(shellenv.Config{HomeDir: t.TempDir(), Shell: "bash"})

	cat, err := BuildCatalog(cfg, env, st, filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	assert.Equal(t, []string{task.UpdateName, "git", "lazygit", "kubectl", task.CleanupName}, cat.Names())

	git, ok := cat.Lookup("git")
	require.True(t, ok)
	assert.Equal(t, "Git", git.Label)
	require.NoError(t, git.Action.Run(), "commands task runs its shell commands")
}

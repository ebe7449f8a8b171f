package installer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"devsetup/internal/config"
	"devsetup/internal/logger"
	"devsetup/internal/shellenv"
	"devsetup/internal/state"
)

// commandRunner executes a fixed sequence of shell command lines, stopping at
// the first failure. The update and cleanup pseudo-tasks are commandRunners,
// as are config tasks with source "commands".
type commandRunner struct {
	commands []string
}

func (r *commandRunner) Run() error {
	return runCommands(r.commands)
}

func runCommands(commands []string) error {
	for _, line := range commands {
		cmd := exec.Command("sh", "-c", line)
		logger.Debug("Running command: %s\n", line)
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("command %q failed: %w\noutput: %s", line, err, strings.TrimSpace(string(output)))
		}
	}
	return nil
}

// toolRunner wraps one tool installation: it skips work a previous run
// already recorded, performs the source-specific install, persists the
// install record, and exports the tool's PATH entry when one is configured.
// Skipping is the task body's own idempotency; the orchestration core does
// not rely on it.
type toolRunner struct {
	spec      config.TaskSpec
	binDir    string
	env       *shellenv.Mutator
	st        *state.State
	statePath string
	install   func() (string, error) // returns the installed executable path
}

func (r *toolRunner) Run() error {
	if prev, ok := r.st.Tools[r.spec.Name]; ok && r.spec.Version != "" && prev.Version == r.spec.Version {
		logger.Info("%s %s already installed. Skipping.\n", r.spec.Name, r.spec.Version)
		return r.exportPath()
	}

	installPath, err := r.install()
	if err != nil {
		return err
	}

	r.st.Tools[r.spec.Name] = state.ToolState{
		Version:     r.spec.Version,
		InstallPath: installPath,
	}
	state.Save(r.statePath, r.st)

	return r.exportPath()
}

func (r *toolRunner) exportPath() error {
	if r.spec.PathEntry == "" {
		return nil
	}
	_, err := r.env.EnsurePathEntry(r.spec.PathEntry)
	return err
}

// installFromURL downloads the file at spec.URL and installs it: archives are
// extracted and their executables copied into binDir, anything else is
// treated as a raw binary.
func installFromURL(spec config.TaskSpec, binDir string) (string, error) {
	tmp := filepath.Join(os.TempDir(), filepath.Base(spec.URL))
	if err := downloadFile(spec.URL, tmp); err != nil {
		return "", fmt.Errorf("failed to download %s: %w", spec.URL, err)
	}

	if isArchive(tmp) {
		return extractAndInstall(tmp, spec.Name, binDir)
	}

	dst := filepath.Join(binDir, spec.Name)
	if err := copyExecutable(tmp, dst); err != nil {
		return "", err
	}
	return dst, nil
}

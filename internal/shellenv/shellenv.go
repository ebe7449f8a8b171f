package shellenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"devsetup/internal/logger"
)

// Marker comment written above every export line this tool appends, so a
// human scanning the profile can tell where an entry came from.
const marker = "# added by devsetup"

// Config carries the ambient environment the mutator needs, made explicit so
// tests can point it at a temp directory instead of the real home.
type Config struct {
	HomeDir string // the operator's home directory
	Shell   string // value of $SHELL, or a bare shell name like "bash"
}

// Detect builds a Config from the current process environment.
func Detect() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return Config{HomeDir: home, Shell: os.Getenv("SHELL")}, nil
}

// ProfileError reports that the shell profile file could not be read or
// written. It surfaces through the executor as an ordinary task failure.
type ProfileError struct {
	Path string
	Err  error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("shell profile %s: %v", e.Path, e.Err)
}

func (e *ProfileError) Unwrap() error { return e.Err }

// Mutator idempotently extends the operator's PATH: once in the persisted
// shell profile, and once in the current process so later tasks in the same
// run can already use the tools an earlier task installed.
//
// The check-then-append sequence is not safe against concurrent writers of
// the same profile file; execution here is single-process and single-run.
type Mutator struct {
	cfg Config
}

func New(cfg Config) *Mutator {
	return &Mutator{cfg: cfg}
}

// ProfilePath returns the profile file targeted by this mutator, chosen by
// inspecting the configured shell. Two shells are recognized; anything else
// falls back to .zshrc as a best-effort default rather than an error.
func (m *Mutator) ProfilePath() string {
	shell := m.cfg.Shell
	switch {
	case strings.Contains(shell, "zsh"):
		return filepath.Join(m.cfg.HomeDir, ".zshrc")
	case strings.Contains(shell, "bash"):
		return filepath.Join(m.cfg.HomeDir, ".bashrc")
	default:
		logger.Warn("Unknown shell %q, defaulting to .zshrc\n", shell)
		return filepath.Join(m.cfg.HomeDir, ".zshrc")
	}
}

// EnsurePathEntry guarantees that, after the call, the shell profile contains
// exactly one export statement adding dir to PATH, and that the in-process
// PATH also includes it. Repeated calls with the same directory change
// nothing after the first. It returns whether a new profile block was
// appended.
func (m *Mutator) EnsurePathEntry(dir string) (bool, error) {
	rcPath := m.ProfilePath()

	content, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return false, &ProfileError{Path: rcPath, Err: err}
	}

	added := false
	if strings.Contains(string(content), dir) {
		logger.Info("PATH entry %s already present in %s\n", dir, rcPath)
	} else {
		f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return false, &ProfileError{Path: rcPath, Err: err}
		}
		block := fmt.Sprintf("%s\nexport PATH=\"$PATH:%s\"\n", marker, dir)
		if _, err := f.WriteString(block); err != nil {
			_ = f.Close()
			return false, &ProfileError{Path: rcPath, Err: err}
		}
		if err := f.Close(); err != nil {
			return false, &ProfileError{Path: rcPath, Err: err}
		}
		added = true
		logger.Info("Added %s to PATH in %s\n", dir, rcPath)
	}

	// Extend the current process PATH as well, so tools installed by an
	// earlier task are reachable by later tasks in the same run.
	cur := os.Getenv("PATH")
	if !pathContains(cur, dir) {
		if err := os.Setenv("PATH", cur+string(os.PathListSeparator)+dir); err != nil {
			return added, fmt.Errorf("failed to extend process PATH: %w", err)
		}
		logger.Debug("Extended process PATH with %s\n", dir)
	}
	return added, nil
}

func pathContains(pathList, dir string) bool {
	for _, p := range filepath.SplitList(pathList) {
		if p == dir {
			return true
		}
	}
	return false
}

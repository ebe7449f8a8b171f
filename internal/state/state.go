package state

import (
	"encoding/json"
	"os"

	"devsetup/internal/logger"
)

// ToolState records what a tool task installed: the version it targeted and
// where the executable landed. Task actions use it to skip work already done
// by a previous run; the orchestration core itself never reads it.
type ToolState struct {
	Version     string `json:"version"`
	InstallPath string `json:"install_path"`
}

// State is the persisted install record, keyed by task name.
type State struct {
	Tools map[string]ToolState `json:"tools"`
}

// Load reads the state file at path. A missing or unreadable file yields a
// fresh empty state: the first run of a new machine has nothing recorded yet.
func Load(path string) *State {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &State{Tools: make(map[string]ToolState)}
	}

	var st State
	_ = json.Unmarshal(raw, &st)
	if st.Tools == nil {
		st.Tools = make(map[string]ToolState)
	}
	return &st
}

// Save writes the state to path as indented JSON. Errors are logged, not
// propagated: a failed state write must not abort an otherwise successful
// install, it only costs the next run a redundant re-install check.
func Save(path string, st *State) {
	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal state: %v\n", err)
		return
	}
	logger.Debug("Writing state to %s\n", path)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		logger.Error("Failed to write state file %s: %v\n", path, err)
	}
}

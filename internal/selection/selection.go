package selection

import (
	"fmt"
	"strings"

	"devsetup/internal/task"
)

// Mode is the operator's top-level choice for a run.
type Mode string

const (
	// ModeAll runs every catalog task: update first, cleanup last.
	ModeAll Mode = "all"
	// ModeManual consults a per-task yes/no response for each tool task.
	// Cleanup is always appended, even when every tool was declined, so a
	// transiently updated package index is never left behind.
	ModeManual Mode = "manual"
	// ModeExit runs nothing and terminates the process deliberately.
	ModeExit Mode = "exit"
)

// UnknownModeError reports a top-level mode value outside the three accepted
// ones. It is a hard error, not a silent no-op: the driver exits non-zero
// before any task runs.
type UnknownModeError struct {
	Mode Mode
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown selection mode %q (want all, manual or exit)", string(e.Mode))
}

// Resolve maps operator intent to the ordered list of task names to execute.
// The returned selection always preserves catalog order, independent of the
// order the operator answered prompts in. In manual mode the update
// pseudo-task is consulted through the same responses map, keyed by its name,
// and cleanup is included unconditionally. ModeExit yields an empty selection.
func Resolve(cat *task.Catalog, mode Mode, responses map[string]string) ([]string, error) {
	switch mode {
	case ModeAll:
		return cat.Names(), nil

	case ModeManual:
		var names []string
		for _, t := range cat.Tasks() {
			if t.Name == task.CleanupName || Affirmative(responses[t.Name]) {
				names = append(names, t.Name)
			}
		}
		return names, nil

	case ModeExit:
		return nil, nil

	default:
		return nil, &UnknownModeError{Mode: mode}
	}
}

// Affirmative reports whether a prompt response counts as a yes. The accepted
// set is deliberately small: anything starting with "y" or "Y" after trimming
// whitespace. Every other value, including empty, is a decline.
func Affirmative(response string) bool {
	trimmed := strings.TrimSpace(response)
	return trimmed != "" && (trimmed[0] == 'y' || trimmed[0] == 'Y')
}

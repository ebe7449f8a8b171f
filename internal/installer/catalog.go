package installer

import (
	"fmt"

	"devsetup/internal/config"
	"devsetup/internal/shellenv"
	"devsetup/internal/state"
	"devsetup/internal/task"
)

// BuildCatalog turns the inert config data into the ordered task catalog the
// orchestration core executes. Config order is catalog order; the update and
// cleanup pseudo-tasks bracket the tool tasks.
func BuildCatalog(cfg *config.Config, env *shellenv.Mutator, st *state.State, statePath string) (*task.Catalog, error) {
	update := task.Task{
		Label:  cfg.Update.Label,
		Action: &commandRunner{commands: cfg.Update.Commands},
	}
	cleanup := task.Task{
		Label:  cfg.Cleanup.Label,
		Action: &commandRunner{commands: cfg.Cleanup.Commands},
	}

	tools := make([]task.Task, 0, len(cfg.Tasks))
	for _, spec := range cfg.Tasks {
		action, err := buildAction(spec, cfg.BinDir, env, st, statePath)
		if err != nil {
			return nil, err
		}
		tools = append(tools, task.Task{Name: spec.Name, Label: spec.Label, Action: action})
	}

	return task.New(update, tools, cleanup)
}

func buildAction(spec config.TaskSpec, binDir string, env *shellenv.Mutator, st *state.State, statePath string) (task.Runner, error) {
	r := &toolRunner{
		spec:      spec,
		binDir:    binDir,
		env:       env,
		st:        st,
		statePath: statePath,
	}

	switch spec.Source {
	case "commands":
		r.install = func() (string, error) {
			return "", runCommands(spec.Commands)
		}
	case "github":
		r.install = func() (string, error) {
			return installFromGitHub(spec, binDir)
		}
	case "url":
		r.install = func() (string, error) {
			return installFromURL(spec, binDir)
		}
	default:
		// Unreachable for configs that passed validation.
		return nil, fmt.Errorf("task %q: unknown source %q", spec.Name, spec.Source)
	}
	return r, nil
}

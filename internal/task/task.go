package task

import "fmt"

// Names of the two pseudo-tasks that bracket every catalog: the optional
// leading package-index update and the unconditional trailing cleanup.
const (
	UpdateName  = "update"
	CleanupName = "cleanup"
)

// Runner is the opaque unit of work behind a task. The orchestration core
// never inspects what a Runner does; it only sequences runs and reacts to the
// returned error. Implementations live in internal/installer, and tests
// substitute fakes so no real package manager or network call is made.
type Runner interface {
	Run() error
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func() error

func (f RunnerFunc) Run() error { return f() }

// Task is one named, orderable unit of provisioning work.
// Tasks are defined once at catalog construction and never mutated.
type Task struct {
	Name   string // stable identifier, unique within the catalog
	Label  string // human-readable description for menus and logs
	Action Runner
}

// Catalog is the fixed, ordered registry of all known tasks. Definition order
// is authoritative for execution order: the update pseudo-task comes first,
// the tool tasks follow in the order they were supplied, cleanup comes last.
type Catalog struct {
	tasks []Task
	index map[string]int
}

// New builds a catalog from the update pseudo-task, the ordered tool tasks
// and the cleanup pseudo-task. It rejects empty or duplicate task names and
// tool tasks that reuse a pseudo-task name.
func New(update Task, tools []Task, cleanup Task) (*Catalog, error) {
	update.Name = UpdateName
	cleanup.Name = CleanupName

	all := make([]Task, 0, len(tools)+2)
	all = append(all, update)
	all = append(all, tools...)
	all = append(all, cleanup)

	index := make(map[string]int, len(all))
	for i, t := range all {
		if t.Name == "" {
			return nil, fmt.Errorf("task at position %d has no name", i)
		}
		if t.Action == nil {
			return nil, fmt.Errorf("task %q has no action", t.Name)
		}
		if _, dup := index[t.Name]; dup {
			return nil, fmt.Errorf("duplicate task name %q", t.Name)
		}
		index[t.Name] = i
	}
	return &Catalog{tasks: all, index: index}, nil
}

// Tasks returns the full ordered task list, pseudo-tasks included.
func (c *Catalog) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Names returns the full ordered list of task names.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.tasks))
	for i, t := range c.tasks {
		names[i] = t.Name
	}
	return names
}

// Tools returns the ordered tool tasks, excluding the two pseudo-tasks.
// This is the list the manual-selection prompts iterate over.
func (c *Catalog) Tools() []Task {
	out := make([]Task, len(c.tasks)-2)
	copy(out, c.tasks[1:len(c.tasks)-1])
	return out
}

// Lookup returns the task with the given name, and whether it exists.
func (c *Catalog) Lookup(name string) (Task, bool) {
	i, ok := c.index[name]
	if !ok {
		return Task{}, false
	}
	return c.tasks[i], true
}

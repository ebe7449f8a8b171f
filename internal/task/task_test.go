package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noop = RunnerFunc(func() error { return nil })

func TestCatalogOrderAndPseudoTasks(t *testing.T) {
	cat, err := New(
		Task{Label: "Update", Action: noop},
		[]Task{
			{Name: "git", Label: "Git", Action: noop},
			{Name: "go", Label: "Go toolchain", Action: noop},
		},
		Task{Label: "Cleanup", Action: noop},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{UpdateName, "git", "go", CleanupName}, cat.Names())

	tools := cat.Tools()
	require.Len(t, tools, 2)
	assert.Equal(t, "git", tools[0].Name)
	assert.Equal(t, "go", tools[1].Name)
}

func TestCatalogLookup(t *testing.T) {
	cat, err := New(
		Task{Action: noop},
		[]Task{{Name: "git", Label: "Git", Action: noop}},
		Task{Action: noop},
	)
	require.NoError(t, err)

	got, ok := cat.Lookup("git")
	require.True(t, ok)
	assert.Equal(t, "Git", got.Label)

	_, ok = cat.Lookup("missing")
	assert.False(t, ok)

	_, ok = cat.Lookup(CleanupName)
	assert.True(t, ok)
}

func TestCatalogRejectsDuplicateNames(t *testing.T) {
	_, err := New(
		Task{Action: noop},
		[]Task{
			{Name: "git", Action: noop},
			{Name: "git", Action: noop},
		},
		Task{Action: noop},
	)
	require.ErrorContains(t, err, "duplicate task name")
}

func TestCatalogRejectsUnnamedOrActionlessTasks(t *testing.T) {
	_, err := New(
		Task{Action: noop},
		[]Task{{Name: "", Action: noop}},
		Task{Action: noop},
	)
	require.ErrorContains(t, err, "no name")

	_, err = New(
		Task{Action: noop},
		[]Task{{Name: "git"}},
		Task{Action: noop},
	)
	require.ErrorContains(t, err, "no action")
}

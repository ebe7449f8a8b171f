package main

import (
	"devsetup/cmd" // CLI commands and execution logic
)

// main is the program entry point. It delegates to cmd.Execute(), which
// handles command-line parsing and execution, keeping the CLI surface
// separate from main.
//
// devsetup provisions a fresh developer workstation:
//   - Reads a YAML configuration describing the curated tasks: package
//     installs, GitHub release binaries, direct URL downloads, and the PATH
//     entries each tool needs
//   - Lets the operator install everything, pick tools one by one, or exit;
//     execution always follows catalog order under fail-fast semantics
//   - Appends idempotent PATH export blocks to the operator's shell profile
//     so newly installed tools are reachable, in this run and in new shells
//   - Tracks a JSON state file so re-runs skip tools already at the
//     requested version
//
// Every failure is surfaced through the colored logger before the process
// terminates with a non-zero status; nothing is retried or rolled back.
func main() {
	cmd.Execute()
}

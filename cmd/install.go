package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"devsetup/internal/config"
	"devsetup/internal/executor"
	"devsetup/internal/installer"
	"devsetup/internal/logger"
	"devsetup/internal/selection"
	"devsetup/internal/shellenv"
	"devsetup/internal/state"
	"devsetup/internal/task"
)

// configPath holds the path to the configuration YAML file, passed via the
// `--config` or `-c` flag.
var configPath string

// statePath is the path to the persistent install-state file.
var statePath = "state.json"

// Process exit codes. The deliberate exit choice shares the success code but
// is logged distinctly, so a completed run and a declined run can be told
// apart in the transcript.
const (
	exitOK           = 0
	exitRunFailed    = 1
	exitBadSelection = 2
)

// installCmd drives an interactive provisioning run: banner, top-level mode
// menu, per-task prompts in manual mode, then sequential fail-fast execution.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Interactively install the curated toolset",
	Run: func(cmd *cobra.Command, args []string) {
		if code := runInstall(os.Stdin); code != exitOK {
			os.Exit(code)
		}
	},
}

func init() {
	installCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")
	installCmd.Flags().StringVar(&statePath, "state", "state.json", "Path to install state file")
}

// runInstall is the whole driver, separated from cobra so tests can feed it
// scripted operator input. It returns the process exit code.
func runInstall(in io.Reader) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("%v\n", err)
		return exitRunFailed
	}

	envCfg, err := shellenv.Detect()
	if err != nil {
		logger.Error("%v\n", err)
		return exitRunFailed
	}
	if cfg.Shell != "" {
		envCfg.Shell = cfg.Shell
	}

	st := state.Load(statePath)
	cat, err := installer.BuildCatalog(cfg, shellenv.New(envCfg), st, statePath)
	if err != nil {
		logger.Error("%v\n", err)
		return exitRunFailed
	}

	reader := bufio.NewReader(in)
	printBanner()
	mode := promptMode(reader)

	var responses map[string]string
	if mode == selection.ModeManual {
		responses = collectResponses(reader, cat)
	}

	names, err := selection.Resolve(cat, mode, responses)
	if err != nil {
		logger.Error("%v\n", err)
		return exitBadSelection
	}
	if mode == selection.ModeExit {
		logger.Info("Exiting without installing anything.\n")
		return exitOK
	}

	logger.Info("Running %d task(s)...\n", len(names))
	if _, err := executor.Run(cat, names); err != nil {
		return exitRunFailed
	}

	printBanner()
	logger.Success("All selected tasks completed successfully.\n")
	return exitOK
}

func printBanner() {
	logger.Info("==========================================\n")
	logger.Info("  devsetup — workstation provisioning\n")
	logger.Info("==========================================\n")
}

// promptMode renders the top-level menu and maps the operator's answer to a
// selection mode. Unrecognized input is passed through verbatim so Resolve
// reports it as a SelectionError instead of silently ignoring it.
func promptMode(r *bufio.Reader) selection.Mode {
	fmt.Println("  1) Install everything")
	fmt.Println("  2) Choose tools one by one")
	fmt.Println("  3) Exit")
	fmt.Print("Select an option [1-3]: ")

	answer := readLine(r)
	switch answer {
	case "1":
		return selection.ModeAll
	case "2":
		return selection.ModeManual
	case "3", "q", "exit":
		return selection.ModeExit
	default:
		return selection.Mode(answer)
	}
}

// collectResponses gathers one y/N answer per tool task, plus the top-level
// update prompt, keyed by task name for the selection engine. The cleanup
// pseudo-task is never asked about; it is unconditional in manual mode.
func collectResponses(r *bufio.Reader, cat *task.Catalog) map[string]string {
	responses := make(map[string]string)

	fmt.Print("Update the package index first? [y/N]: ")
	responses[task.UpdateName] = readLine(r)

	for _, t := range cat.Tools() {
		fmt.Printf("Install %s? [y/N]: ", t.Label)
		responses[t.Name] = readLine(r)
	}
	return responses
}

func readLine(r *bufio.Reader) string {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

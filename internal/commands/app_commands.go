package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/TheItcor/rawIDE/internal/logger"
	"github.com/TheItcor/rawIDE/internal/modehandler"
	"github.com/TheItcor/rawIDE/internal/runner"
)

const helpText = ":w - save\n" +
	":wq - save and quit\n" +
	":q - quit (:q! to force)\n" +
	":r - compile & run current file\n" +
	":open filename - open file\n" +
	":cd dir - change directory\n" +
	":mkdir dir - create directory\n" +
	":ls [dir] - list directory\n" +
	"Ctrl+Z - undo\n" +
	"Ctrl+U - redo\n" +
	"Ctrl+Y - yank line\n" +
	"Ctrl+V - paste\n"

// RegisterAppCommands registers the built-in ':' commands.
func RegisterAppCommands(api API) {
	register := func(name string, fn modehandler.CommandFunc) {
		if err := api.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}

	// --- Save ---
	saveCmdFunc := func(args []string) error {
		if len(args) > 0 {
			saveTo(api, args[0])
			return nil
		}
		if api.BufferFilePath() == "" {
			api.SetStatusMessage("Specify filename: :w filename")
			return nil
		}
		saveTo(api, "")
		return nil
	}

	// --- Save and quit ---
	saveQuitCmdFunc := func(args []string) error {
		if api.BufferFilePath() == "" {
			api.SetStatusMessage("Specify filename: :wq filename")
			return nil
		}
		// The session only ends once the save actually went through.
		if saveTo(api, "") {
			api.RequestQuit()
		}
		return nil
	}

	// --- Quit ---
	quitCmdFunc := func(args []string) error {
		force := len(args) > 0 && args[0] == "!"
		if !force && api.IsBufferModified() {
			api.SetStatusMessage("Unsaved changes. Use :q! to quit without saving.")
			return nil
		}
		api.RequestQuit()
		return nil
	}
	forceQuitCmdFunc := func(args []string) error {
		api.RequestQuit()
		return nil
	}

	// --- Compile and run ---
	runCmdFunc := func(args []string) error {
		fname := api.BufferFilePath()
		if fname == "" {
			api.SetStatusMessage("No filename. Save first with :w")
			return nil
		}
		if err := api.SaveBuffer(""); err != nil {
			api.SetStatusMessage("Failed to save: %v", err)
			return nil
		}

		plan, supported, err := runner.PlanFor(fname)
		if !supported {
			api.SetStatusMessage("Run/compile not supported for %s", strings.ToLower(filepath.Ext(fname)))
			return nil
		}
		if err != nil {
			api.SetStatusMessage("Run error: %v", err)
			return nil
		}
		defer plan.Cleanup()

		if plan.NeedsCompile() {
			res := api.Runner().Execute(plan.Compile, "", api.CompileTimeout())
			if res.ExitCode != 0 {
				api.ShowPopup(runner.FormatCompileFailure(res))
				return nil
			}
		}
		res := api.Runner().Execute(plan.Run, "", api.RunTimeout())
		api.ShowPopup(runner.FormatOutput(res))
		return nil
	}

	// --- Open ---
	openCmdFunc := func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Usage: :open filename")
			return nil
		}
		fname := args[0]
		if err := api.OpenFile(fname); err != nil {
			api.SetStatusMessage("Error opening %s: %v", fname, err)
		} else {
			api.SetStatusMessage("Opened %s", fname)
		}
		return nil
	}

	// --- Change directory ---
	cdCmdFunc := func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Usage: :cd directory")
			return nil
		}
		if err := os.Chdir(args[0]); err != nil {
			api.SetStatusMessage("cd error: %v", err)
			return nil
		}
		cwd, err := os.Getwd()
		if err != nil {
			api.SetStatusMessage("cd error: %v", err)
			return nil
		}
		api.SetStatusMessage("cwd: %s", cwd)
		return nil
	}

	// --- Make directory ---
	mkdirCmdFunc := func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Usage: :mkdir dirname")
			return nil
		}
		if err := os.MkdirAll(args[0], 0o755); err != nil {
			api.SetStatusMessage("mkdir error: %v", err)
			return nil
		}
		api.SetStatusMessage("mkdir ok")
		return nil
	}

	// --- List directory ---
	lsCmdFunc := func(args []string) error {
		target := "."
		if len(args) > 0 {
			target = args[0]
		}
		entries, err := os.ReadDir(target)
		if err != nil {
			api.SetStatusMessage("ls error: %v", err)
			return nil
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		api.ShowPopup(strings.Join(names, "\n"))
		return nil
	}

	// --- Help ---
	helpCmdFunc := func(args []string) error {
		api.ShowPopup(helpText)
		return nil
	}

	register("w", saveCmdFunc)
	register("wq", saveQuitCmdFunc)
	register("q", quitCmdFunc)
	register("q!", forceQuitCmdFunc)
	register("r", runCmdFunc)
	register("open", openCmdFunc)
	register("cd", cdCmdFunc)
	register("mkdir", mkdirCmdFunc)
	register("ls", lsCmdFunc)
	register("help", helpCmdFunc)
}

// saveTo writes the buffer to target ("" reuses the current association) and
// reports the outcome in the status bar. Returns true when the save went
// through.
func saveTo(api API, target string) bool {
	if err := api.SaveBuffer(target); err != nil {
		api.SetStatusMessage("Error saving: %v", err)
		return false
	}
	api.SetStatusMessage("Saved %s", api.BufferFilePath())
	return true
}

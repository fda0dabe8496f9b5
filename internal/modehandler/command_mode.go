package modehandler

import (
	"strings"

	"github.com/TheItcor/rawIDE/internal/logger"
)

// runCommandPrompt suspends the mode machine, reads one command line from
// the prompt and executes it. Returns false when the executed command
// terminated the session.
func (mh *ModeHandler) runCommandPrompt() bool {
	line, ok := mh.prompt.ReadLine(":")
	if !ok {
		// Cancelled; nothing happened.
		return true
	}
	return mh.ExecuteCommand(line)
}

// ExecuteCommand parses and dispatches a single command line. Returns false
// when the command requested session termination.
func (mh *ModeHandler) ExecuteCommand(cmdline string) bool {
	cmdStr := strings.TrimSpace(cmdline)
	if cmdStr == "" {
		return true
	}

	parts := strings.Fields(cmdStr)
	cmdName := parts[0]
	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return true
	}

	logger.Debugf("ModeHandler: executing command ':%s' args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
	return !mh.quitRequested
}

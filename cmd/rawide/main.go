// cmd/rawide/main.go
package main

import (
	"flag"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"github.com/TheItcor/rawIDE/internal/app"
	"github.com/TheItcor/rawIDE/internal/config"
	"github.com/TheItcor/rawIDE/internal/logger"
)

var filePath string

func main() {
	// --- Argument Parsing ---
	// The file to edit arrives as the only positional argument; everything
	// else comes from the config file.
	flag.Parse()
	if flag.NArg() > 0 {
		filePath = flag.Arg(0)
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig("")
	if err != nil {
		// Defaults still apply; the session can run without a config file.
		stlog.Printf("Warning: config load failed: %v", err)
	}

	// --- Logger Initialization ---
	if err := logger.InitFromConfig(cfg.Logger); err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	logger.Infof("Starting rawIDE...")
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	ideApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		logger.Close()
		os.Exit(1)
	}

	if err := ideApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		logger.Close()
		os.Exit(1)
	}

	logger.Infof("rawIDE finished.")
}

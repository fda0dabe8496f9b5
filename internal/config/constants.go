package config

import "time"

// Base application details
const AppName = "rawide"
const ConfigDirName = "rawide"
const DefaultConfigFileName = "config.toml"
const ConfigPathEnvVar = "RAWIDE_CONFIG"

// UI layout: status bar row plus message/prompt row.
const ReservedRows = 2

// Status bar
const MessageTimeout = 3 * time.Second

// Editing defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 0
const DefaultUndoDepth = 200
const SystemClipboard = true

// External process phases. Compile and run are timed independently.
const DefaultExecTimeout = 10 * time.Second
const DefaultCompileTimeout = 30 * time.Second
const DefaultRunTimeout = 30 * time.Second

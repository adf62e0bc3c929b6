// Package config provides configuration loading and defaults for pygrade.
package config

// DefaultOutputDir is where reports are written, relative to the working
// directory unless overridden.
const DefaultOutputDir = "code_quality_reports"

// DefaultConfigDir is the default location for pygrade configuration.
const DefaultConfigDir = "~/.config/pygrade"

// DefaultExtensions are the file extensions analyzed by default.
var DefaultExtensions = []string{".py"}

// DefaultExcludeDirs are directory names skipped during discovery.
var DefaultExcludeDirs = []string{
	"__pycache__",
	".git",
	".venv",
	"venv",
	"node_modules",
}

// DefaultWorkers of 0 means one worker per CPU.
const DefaultWorkers = 0

// DefaultOutput holds the default terminal output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// Package config is the engine's own configuration surface: a TOML file
// decoded once at startup into a package-level Settings value, the same
// read-then-apply-defaults sequence used throughout the ambient stack this
// engine is grounded on. The referee, self-play trainer and opening-book
// builder each keep their own private TOML schemas; this is only the
// core's.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the configuration file, settable before Setup()
// is called (e.g. from a command line flag).
var ConfFile = "./config/config.toml"

var (
	// LogLevel is the standard engine log level, set by default, by the
	// config file or overridden from the command line.
	LogLevel = LogLevels["info"]

	// SearchLogLevel is the search log level.
	SearchLogLevel = LogLevels["info"]

	// Settings is the global configuration, read in from ConfFile.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the configuration file (if present) and fills in defaults
// for anything the file did not specify. Safe to call multiple times;
// only the first call has an effect.
func Setup() {
	if initialized {
		return
	}

	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		fmt.Println("config: using defaults:", err)
	}

	setupLogLvl()
	setupSearch()
	setupEval()

	initialized = true
}

// LogLevels maps string log-level names to their numeric go-logging level.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

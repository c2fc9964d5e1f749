// Package logging is a thin helper over "github.com/op/go-logging" that
// reduces each call site to one line: GetLog/GetSearchLog return
// pre-configured *logging.Logger instances backed by os.Stdout with a
// shared time/package/level/message format.
package logging

import (
	"os"

	golog "log"

	"github.com/op/go-logging"

	"github.com/tczajka/wazir-drop-sub000/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
}

// GetLog returns the standard engine logger, leveled from
// config.LogLevel.
func GetLog(subsystem string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the search-specific logger, leveled from
// config.SearchLogLevel. Kept separate from the standard log so that a
// verbose search trace can be silenced independently of engine logging.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

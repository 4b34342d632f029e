package logger

import (
	"io"
	"os"

	"github.com/MrSnakeDoc/tailwhip/internal/printer"
)

// Verbosity thresholds for -v flags.
const (
	VerbosityNormal = 0 // changed files only
	VerbosityLoud   = 1 // -v: unchanged files too
	VerbosityDiff   = 2 // -vv: diff preview
	VerbosityDebug  = 3 // -vvv: debug logs
)

var (
	FlagVerboseCount int  // -v, -vv, -vvv
	FlagQuiet        bool // --quiet/-q
	FlagJSON         bool // --json-logs, for CI
)

func ConfigureLoggerFromFlags() {
	var out io.Writer = os.Stdout
	var level string
	switch {
	case FlagQuiet:
		level = "error"
		out = os.Stderr
	case FlagVerboseCount >= VerbosityDebug:
		level = "debug"
	default:
		level = "info"
	}

	Configure(Options{
		Level: level,
		JSON:  FlagJSON,
		Color: !FlagJSON && printer.TerminalColor(),
		Out:   out,
	})
}

// Verbosity returns the effective -v count, 0 when quiet.
func Verbosity() int {
	if FlagQuiet {
		return 0
	}
	return FlagVerboseCount
}

package printer

import (
	"github.com/fatih/color"
)

type ColorPrinter struct {
	Success func(format string, a ...interface{}) string
	Error   func(format string, a ...interface{}) string
	Warning func(format string, a ...interface{}) string
	Info    func(format string, a ...interface{}) string
	Debug   func(format string, a ...interface{}) string

	// diff and report output
	Added    func(format string, a ...interface{}) string
	Removed  func(format string, a ...interface{}) string
	Filename func(format string, a ...interface{}) string
	Dim      func(format string, a ...interface{}) string
	Bold     func(format string, a ...interface{}) string
}

func NewColorPrinter() *ColorPrinter {
	return &ColorPrinter{
		Success:  color.New(color.FgGreen).SprintfFunc(),
		Error:    color.New(color.FgRed).SprintfFunc(),
		Warning:  color.New(color.FgYellow).SprintfFunc(),
		Info:     color.New(color.FgBlue).SprintfFunc(),
		Debug:    color.New(color.FgCyan).SprintfFunc(),
		Added:    color.New(color.FgGreen).SprintfFunc(),
		Removed:  color.New(color.FgRed).SprintfFunc(),
		Filename: color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Dim:      color.New(color.Faint).SprintfFunc(),
		Bold:     color.New(color.FgHiBlue, color.Bold).SprintfFunc(),
	}
}

// terminalColor is the terminal detection result, taken before any SetColor.
var terminalColor = !color.NoColor

// TerminalColor reports whether the terminal supports colour (a tty, no
// NO_COLOR, TERM not dumb).
func TerminalColor() bool { return terminalColor }

// SetColor forces colour output on or off, overriding terminal detection.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

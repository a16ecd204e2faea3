package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.apply(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.apply(fmt.Sprintf(format, a...))
}

func (f Formatter) apply(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats commands the user can run.
	// Yellow with color, `quoted' without.
	Code = Formatter{color.New(color.FgYellow), "`", "'"}

	// Path formats secret paths and file names.
	Path = Formatter{color.New(color.FgCyan), "", ""}

	// Success formats the outcome of a finished step.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error labels.
	Error = Formatter{color.New(color.FgRed, color.Bold), "", ""}
)

// Package ui provides colored console output for the CLI.
//
// Messages go to Output (stderr by default) so that stdout carries only
// rendered template output and can be piped.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Colors
	Red    = color.New(color.FgRed)
	Green  = color.New(color.FgGreen)
	Yellow = color.New(color.FgYellow)
	Blue   = color.New(color.FgBlue)
	Bold   = color.New(color.Bold)
	Faint  = color.New(color.Faint)
)

// Output receives all messages.
var Output io.Writer = os.Stderr

// Verbose enables Debug messages.
var Verbose bool

// Color modes accepted by SetColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// SetColorMode enables or disables color. In auto mode color is used only
// when stderr is a terminal and NO_COLOR is unset.
func SetColorMode(mode string) error {
	switch mode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	case ColorAuto, "":
		_, noColor := os.LookupEnv("NO_COLOR")
		color.NoColor = noColor || !term.IsTerminal(int(os.Stderr.Fd()))
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
	}
	return nil
}

// Success prints a green success message with checkmark.
func Success(format string, args ...any) {
	Green.Fprintf(Output, "✓ "+format+"\n", args...)
}

// Error prints a red error message with X.
func Error(format string, args ...any) {
	Red.Fprintf(Output, "✗ "+format+"\n", args...)
}

// Warning prints a yellow warning message.
func Warning(format string, args ...any) {
	Yellow.Fprintf(Output, "⚠ "+format+"\n", args...)
}

// Info prints a blue info message.
func Info(format string, args ...any) {
	Blue.Fprintf(Output, format+"\n", args...)
}

// Debug prints a faint message when Verbose is set.
func Debug(format string, args ...any) {
	if !Verbose {
		return
	}
	Faint.Fprintf(Output, "  "+format+"\n", args...)
}

// Header prints a bold header.
func Header(format string, args ...any) {
	Bold.Fprintf(Output, format+"\n", args...)
}

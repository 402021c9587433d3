package cmdlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/jwalton/gchalk"
)

// Logger loggs pretty stuff to the console
type Logger struct {
	out     io.Writer
	emojis  bool
	// Verbose enables Debug output
	Verbose bool
	debug   *log.Logger
}

func (l *Logger) println(a string) {
	fmt.Fprintln(l.out, a)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

// Headline prints a bold cyan line
func (l *Logger) Headline(s string) {
	fmt.Fprintln(l.out, gchalk.Bold(gchalk.Cyan(s)))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Log prints a dimmed line
func (l *Logger) Log(s string) {
	l.println(gchalk.Gray(s))
}

// Success prints a green line
func (l *Logger) Success(s string) {
	l.println(l.sprintEmoji("✅") + gchalk.Green(s))
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	l.println(l.sprintEmoji("⚠️ ") + gchalk.Bold(gchalk.Yellow(s)))
}

// Debug prints s only in verbose mode (prefixed with the time)
func (l *Logger) Debug(s string) {
	if !l.Verbose {
		return
	}
	l.debug.Println(gchalk.Gray(s))
}

// DisableColors turns off all colored output
func DisableColors() {
	gchalk.SetLevel(gchalk.LevelNone)
}

// New returns a new Logger writing to stdout (debug lines go to stderr)
func New() *Logger {
	return NewWithWriter(os.Stdout, os.Stderr)
}

// NewWithWriter returns a new Logger writing to out and debug lines to debugOut
func NewWithWriter(out io.Writer, debugOut io.Writer) *Logger {
	emojis := runtime.GOOS != "windows"

	// disable color for CI
	if os.Getenv("CI") != "" {
		emojis = false
		DisableColors()
	}
	return &Logger{
		out:    out,
		emojis: emojis,
		debug:  log.New(debugOut, "debug ", log.Ltime),
	}
}

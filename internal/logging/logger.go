// Package logging provides per-component loggers for jbshell.
//
// The bar owns the terminal while running, so the default sink is a log
// file under the user state directory; stderr is added only when it is not
// a TTY (piped/service use) or when the file cannot be opened.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger returns a pre-configured logger for a component, reusing one
// instance per component name.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()

	level, err := logrus.ParseLevel(os.Getenv("JBSHELL_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	var writers []io.Writer
	if file := openLogFile(); file != nil {
		writers = append(writers, file)
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}
	logger.SetOutput(io.MultiWriter(writers...))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// openLogFile opens (creating as needed) the shared jbshell.log in the
// state directory. Returns nil on any failure; logging must never be the
// reason the bar does not start.
func openLogFile() *os.File {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(home, ".local", "state")
	}
	dir = filepath.Join(dir, "jbshell")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	file, err := os.OpenFile(filepath.Join(dir, "jbshell.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	return file
}

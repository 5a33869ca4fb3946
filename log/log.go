/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package log is the package-level leveled logger used by the transport
// adapters. Until a logger is set with Default, New or SetLogger every call
// is a no-op.
package log

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"

	unilogger "github.com/neuronlabs/uni-logger"
)

const (
	// LDEBUG is the logger DEBUG level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the logger INFO level.
	LINFO = unilogger.INFO
	// LWARNING is the logger WARNING level.
	LWARNING = unilogger.WARNING
	// LERROR is the logger ERROR level.
	LERROR = unilogger.ERROR
	// LCRITICAL is the logger CRITICAL level.
	LCRITICAL = unilogger.CRITICAL
	// LUNKNOWN is the unspecified logger level.
	LUNKNOWN = unilogger.UNKNOWN
)

var (
	// ErrUnknownLevel is returned for a level that cannot be set or parsed.
	ErrUnknownLevel = errors.New("log: unknown level")
	// ErrNoLevelSetter is returned by SetLevel when the current logger cannot
	// change its level.
	ErrNoLevelSetter = errors.New("log: logger does not implement LevelSetter")
)

var (
	mu           sync.RWMutex
	logger       unilogger.LeveledLogger
	currentLevel = LINFO
)

// Default creates and sets a new unilogger.BasicLogger writing to os.Stderr.
func Default() {
	New(os.Stderr, "", stdlog.Ldate|stdlog.Ltime|stdlog.Lshortfile)
}

// New creates a unilogger.BasicLogger that writes to out with the given
// prefix and flags, and sets it as the current logger.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// SetLogger sets l as the current logger and applies the current level to
// it when possible. A nil l disables logging.
func SetLogger(l unilogger.LeveledLogger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	if l == nil {
		return
	}
	if lvl, ok := l.(unilogger.LevelSetter); ok {
		lvl.SetLevel(currentLevel)
	}
}

// Logger returns the current logger, or nil.
func Logger() unilogger.LeveledLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Level returns the current logger level.
func Level() unilogger.Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// SetLevel sets the level for the current and any future logger.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return ErrUnknownLevel
	}
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
	if logger == nil {
		return nil
	}
	lvl, ok := logger.(unilogger.LevelSetter)
	if !ok {
		return ErrNoLevelSetter
	}
	lvl.SetLevel(level)
	return nil
}

// ParseLevel parses one of "debug", "info", "warning", "error" or
// "critical" (case-insensitive).
func ParseLevel(s string) (unilogger.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LDEBUG, nil
	case "info":
		return LINFO, nil
	case "warning", "warn":
		return LWARNING, nil
	case "error":
		return LERROR, nil
	case "critical":
		return LCRITICAL, nil
	}
	return LUNKNOWN, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Debugf writes the formatted LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	if l := Logger(); l != nil {
		l.Debugf(format, args...)
	}
}

// Infof writes the formatted LINFO level log.
func Infof(format string, args ...interface{}) {
	if l := Logger(); l != nil {
		l.Infof(format, args...)
	}
}

// Warningf writes the formatted LWARNING level log.
func Warningf(format string, args ...interface{}) {
	if l := Logger(); l != nil {
		l.Warningf(format, args...)
	}
}

// Errorf writes the formatted LERROR level log.
func Errorf(format string, args ...interface{}) {
	if l := Logger(); l != nil {
		l.Errorf(format, args...)
	}
}

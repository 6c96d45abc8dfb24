// Package log provides file-backed loggers for the application. Stdout
// belongs to the TUI, so everything is written to a logfile in the temp
// dir. Enable debug logging by setting SB_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    *log.Logger
	WarningLog *log.Logger
	ErrorLog   *log.Logger
)

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *log.Logger
)

var (
	logFileName      = filepath.Join(os.TempDir(), "screenbuckets.log")
	debugLogFileName = filepath.Join(os.TempDir(), "screenbuckets-debug.log")

	logFile      *os.File
	debugLogFile *os.File
)

// Initialize sets up the loggers. Call once from main before any logging;
// pair with a deferred Close.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Logging must never take the program down; discard instead.
		InfoLog = log.New(io.Discard, "", 0)
		WarningLog = log.New(io.Discard, "", 0)
		ErrorLog = log.New(io.Discard, "", 0)
	} else {
		logFile = f
		flags := log.Ldate | log.Ltime | log.Lshortfile
		InfoLog = log.New(f, "INFO:", flags)
		WarningLog = log.New(f, "WARNING:", flags)
		ErrorLog = log.New(f, "ERROR:", flags)
	}
	initDebug()
}

// Close flushes and closes the logfiles opened by Initialize.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
	}
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		fmt.Println("wrote debug logs to " + debugLogFileName)
	}
}

// initDebug initializes debug logging if SB_DEBUG=1 is set.
func initDebug() {
	if os.Getenv("SB_DEBUG") != "1" {
		// No-op logger so callers never need a nil check.
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		if ErrorLog != nil {
			ErrorLog.Printf("could not open debug log file: %s", err)
		}
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Println("Debug mode enabled")
	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

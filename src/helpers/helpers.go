// Package helpers contains few functions which are used throughout the project.
package helpers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// SetLogsFile sets the output of the standard logger to the file at
// `logFilePath`. Missing directories are created. New lines are appended to an
// already existing file.
func SetLogsFile(fs afero.Fs, logFilePath string) error {
	if err := fs.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	logFile, err := fs.OpenFile(
		logFilePath,
		os.O_APPEND|os.O_WRONLY|os.O_CREATE,
		0644,
	)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(logFile)
	return nil
}

// SetUpPidFile writes the PID of the current process in `pidFile`.
func SetUpPidFile(fs afero.Fs, pidFile string) error {
	fh, err := fs.OpenFile(pidFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating pid file: %w", err)
	}

	if _, err := fmt.Fprintf(fh, "%d", os.Getpid()); err != nil {
		fh.Close()
		return fmt.Errorf("writing pid file: %w", err)
	}

	return fh.Close()
}

// RemovePidFile removes the pid file created by SetUpPidFile.
func RemovePidFile(fs afero.Fs, pidFile string) {
	if err := fs.Remove(pidFile); err != nil {
		log.Printf("removing pid file: %s\n", err)
	}
}

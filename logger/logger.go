// package logger routes the process-wide loggers to a file. The engine and
// profiler log through the standard library loggers, so both the legacy log
// package and slog are pointed at the same destination.
package logger

import (
	"fmt"
	"log"
	"log/slog"
	"os"
)

// Init opens (or creates) the log file at path and installs it as the default
// destination for both slog and the standard log package. The file is opened
// in append mode so restarts do not truncate previous sessions.
//
// Parameters:
//   - path: the log file path
//
// Returns:
//   - func() error: closer for the underlying file
//   - error: error if the file cannot be opened
func Init(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))
	log.SetOutput(f)

	return f.Close, nil
}

// Package logger constructs the slog logger used across the
// application. The TUI owns the terminal, so logs go to a file under
// the user's state directory instead of stdout.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New constructs a slog Logger that writes JSON records to w.
func New(w io.Writer, service string) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	jh := slog.NewJSONHandler(w, &opts)
	return slog.New(jh).With("service", service)
}

// OpenLogFile opens (creating if needed) the application log file at
// $XDG_STATE_HOME/cuentas/cuentas.log, falling back to
// ~/.local/state. The caller owns the returned file.
func OpenLogFile() (*os.File, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	dir = filepath.Join(dir, "cuentas")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "cuentas.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

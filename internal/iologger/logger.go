// Package iologger sets up the default slog logger from LogConfig.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnkey/pkg/config"
)

// LogFile is the name of the log file created under the log directory.
const LogFile = "gnkey.log"

// Init replaces the default slog logger. With "file" destination the log
// goes to LogFile inside logDir. When keep is true the file is appended
// to, otherwise it is truncated.
func Init(logDir string, cfg config.LogConfig, keep bool) error {
	w, err := writer(logDir, cfg.Destination, keep)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler(w, cfg)))
	return nil
}

func writer(logDir, dest string, keep bool) (io.Writer, error) {
	switch dest {
	case "stdout":
		return os.Stdout, nil
	case "file":
		path := filepath.Join(logDir, LogFile)
		flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if keep {
			flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		f, err := os.OpenFile(path, flag, 0644)
		if err != nil {
			return nil, CreateLogFileError(path, err)
		}
		return f, nil
	default:
		return os.Stderr, nil
	}
}

func handler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: level(cfg.Level)}
	switch cfg.Format {
	// tint shares the text handler
	case "text", "tint":
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

func level(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

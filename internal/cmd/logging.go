package cmd

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/nutribudget/internal/config"
	"github.com/hammamikhairi/nutribudget/internal/logger"
)

// setupLogger builds the application logger from the logging config and
// the --verbose/--quiet flags. Logs go to a file by default so the
// dashboard stays clean; the returned close func releases it.
func setupLogger(cfg config.LoggingConfig) (*logger.Logger, func()) {
	level, _ := logger.ParseLevel(cfg.Level)
	if verbose {
		level = logger.LevelVerbose
	}
	if quiet {
		level = logger.LevelOff
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.File != "" && cfg.File != "stderr" {
		dir := filepath.Dir(cfg.File)
		if dir != "" && dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.File, err)
		} else {
			out = f
			closeFn = func() { _ = f.Close() }
		}
	}

	// Third-party packages writing through the standard logger end up in
	// the same place.
	stdlog.SetOutput(out)
	stdlog.SetFlags(stdlog.Ltime)

	return logger.New(level, out), closeFn
}

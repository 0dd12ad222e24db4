package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/config"
	"github.com/ykatyhoney/sunflower-land/internal/logger"
)

// SetupLogger installs the default logger. Output always goes to stdout;
// when LOG_DIR is set a timestamped session file is written alongside and
// older session files are pruned. The returned file is nil without LOG_DIR
// and must be closed by the caller otherwise.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	loggerConfig := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)

	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, w)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"storage_driver", cfg.StorageDriver,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that a new file brings the
// directory back to LogFileRetentionLimit files.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	// timestamped names sort chronologically
	sort.Strings(logFiles)

	if len(logFiles) < LogFileRetentionLimit {
		return
	}
	for _, name := range logFiles[:len(logFiles)-LogFileRetentionCount] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, LogMsgFailedDeleteOldLog, name, err)
		}
	}
}

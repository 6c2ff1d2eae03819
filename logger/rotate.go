package logger

import (
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingFileConfig configures a size/age-bounded rotating log file,
// suitable for long-running streaming parses that would otherwise grow an
// unbounded log.
type RotatingFileConfig struct {
	// Path is the log file path; its parent directory is created if
	// missing.
	Path string
	// MaxSizeMB is the size in megabytes at which the file rotates.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int
	// MaxAgeDays is the number of days to retain rotated files.
	MaxAgeDays int
	// Compress gzip-compresses rotated files.
	Compress bool
}

// NewRotatingFileOutput builds a LogOutput backed by a size- and age-bounded
// rotating file, paired with formatter.
func NewRotatingFileOutput(config RotatingFileConfig, formatter LogFormatter) (LogOutput, error) {
	if err := os.MkdirAll(filepath.Dir(config.Path), 0o755); err != nil {
		return LogOutput{}, err
	}

	return LogOutput{
		Writer: &lumberjack.Logger{
			Filename:   config.Path,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
			Compress:   config.Compress,
		},
		Formatter: formatter,
	}, nil
}

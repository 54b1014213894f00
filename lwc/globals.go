package internal

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// DefaultAppName is used for config lookup paths and the env prefix
	DefaultAppName        = "lwc"
	DefaultConfigPath     = filepath.Join(getHomeDir(), ".config", DefaultAppName)
	DefaultGlobalConfig   = filepath.Join(DefaultConfigPath, "config.yaml")
	DefaultIgnoreFileName = "." + DefaultAppName + "ignore"
	DefaultEnvPrefix      = strings.ToUpper(DefaultAppName)

	// Engine defaults
	DefaultQueueSize  = 256
	DefaultBufferSize = 64 * 1024
	DefaultLogLevel   = "warn"
)

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			log.Printf("Unable to get home or working directory, using /tmp: %v", err)
			return "/tmp"
		}
		log.Printf("Unable to get home directory, using current working directory: %v", err)
		return cwd
	}
	return homeDir
}

// GetLogger returns a properly configured zerolog logger instance writing to stderr.
// Unknown levels fall back to info.
func GetLogger(level string) zerolog.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger builds a timestamped logger on w at the given level.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

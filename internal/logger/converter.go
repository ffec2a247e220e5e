package logger

import (
	"github.com/aleister1102/discordmsg/internal/config"
)

// ConvertConfig converts application config to logger config
func ConvertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return LoggerConfig{}, err
	}

	loggerConfig := DefaultLoggerConfig()
	loggerConfig.Level = level
	loggerConfig.Format = ParseFormat(cfg.LogFormat)
	loggerConfig.EnableFile = cfg.LogFile != ""
	loggerConfig.FilePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		loggerConfig.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		loggerConfig.MaxBackups = cfg.MaxLogBackups
	}
	return loggerConfig, nil
}

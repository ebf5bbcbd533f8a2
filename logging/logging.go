package logging

import (
	"io"
	"os"

	oplogging "github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hyperledger-labs/firefly-explorer/config"
)

// Logger is the process-wide logger, ready to use after InitLogger.
var Logger = oplogging.MustGetLogger("firefly-explorer")

var format = oplogging.MustStringFormatter(
	`%{time:2006-01-02 15:04:05.000} %{level:.4s} %{shortfile} %{message}`,
)

// InitLogger configures the console and/or rotating-file backends from LogConfig.
func InitLogger(cfg *config.LogConfig) {
	backends := make([]oplogging.Backend, 0, 2)
	if cfg.UseConsoleLogger {
		consoleBackend := oplogging.NewLogBackend(os.Stdout, "", 0)
		backends = append(backends, oplogging.NewBackendFormatter(consoleBackend, format))
	}
	if cfg.UseFileLogger {
		var fileWriter io.Writer = &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxFileSizeInMB,
			MaxBackups: cfg.MaxBackupsOfLogFiles,
			MaxAge:     cfg.MaxAgeToRetainLogFilesInDays,
			Compress:   cfg.Compress,
		}
		fileBackend := oplogging.NewLogBackend(fileWriter, "", 0)
		backends = append(backends, oplogging.NewBackendFormatter(fileBackend, format))
	}
	oplogging.SetBackend(backends...)

	logLevel, err := oplogging.LogLevel(cfg.Level)
	if err != nil {
		logLevel = oplogging.INFO
	}
	oplogging.SetLevel(logLevel, "firefly-explorer")
}

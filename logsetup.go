package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"porygon/config"
)

var lumberjackLogger *lumberjack.Logger

// SetupLogger writes to stderr so that command output on stdout stays
// machine readable.
func SetupLogger(logLevel log.Level, fileLoggingEnabled bool) {
	lumberjackLogger = &lumberjack.Logger{
		// Log file absolute path, os agnostic
		Filename:   filepath.ToSlash("logs/porygon.log"),
		MaxSize:    config.Config.Logging.MaxSize, // MB
		MaxBackups: config.Config.Logging.MaxBackups,
		MaxAge:     config.Config.Logging.MaxAge,   // days
		Compress:   config.Config.Logging.Compress, // disabled by default
	}

	var output io.Writer
	if fileLoggingEnabled {
		output = io.MultiWriter(os.Stderr, lumberjackLogger)
	} else {
		output = os.Stderr
	}

	logFormatter := new(PlainFormatter)
	logFormatter.TimestampFormat = "2006-01-02 15:04:05"
	logFormatter.LevelDesc = []string{"PANC", "FATL", "ERRO", "WARN", "INFO", "DEBG"}

	log.SetFormatter(logFormatter)
	log.SetLevel(logLevel)
	log.SetOutput(output)
}

func closeLogs() {
	if lumberjackLogger != nil {
		_ = lumberjackLogger.Close()
	}
}

type PlainFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

func (f *PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)
	return []byte(fmt.Sprintf("%s %s %s\n", f.LevelDesc[entry.Level], timestamp, entry.Message)), nil
}

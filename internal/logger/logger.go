// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fpfbench/fpfbench/cfg"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	defaultLoggerFactory *loggerFactory
	defaultLogger        *slog.Logger
)

// InitLogFile initializes the logger factory to create loggers that print to
// the log file configured in newLogConfig, rotated with lumberjack. In case of
// empty file path, logs keep going to stderr in the configured format.
func InitLogFile(newLogConfig cfg.LoggingConfig) error {
	var f *lumberjack.Logger
	if newLogConfig.FilePath != "" {
		f = &lumberjack.Logger{
			Filename:   string(newLogConfig.FilePath),
			MaxSize:    int(newLogConfig.LogRotate.MaxFileSizeMb),
			MaxBackups: int(newLogConfig.LogRotate.BackupFileCount),
			Compress:   newLogConfig.LogRotate.Compress,
		}
	}

	format := newLogConfig.Format
	if format == "" {
		format = cfg.TextLogFormat
	}
	level := newLogConfig.Severity
	if level == "" {
		level = cfg.InfoLogSeverity
	}

	defaultLoggerFactory = &loggerFactory{
		file:   f,
		format: format,
		level:  level,
	}
	defaultLogger = defaultLoggerFactory.newLogger(level)

	return nil
}

// init initializes the logger factory to use stderr.
func init() {
	defaultLoggerFactory = &loggerFactory{
		file:   nil,
		format: cfg.TextLogFormat,
		level:  cfg.InfoLogSeverity,
	}
	defaultLogger = defaultLoggerFactory.newLogger(cfg.InfoLogSeverity)
}

// Close closes the log file when necessary.
func Close() {
	if f := defaultLoggerFactory.file; f != nil {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
		defaultLoggerFactory.file = nil
	}
}

// SetAttrs attaches attrs to every subsequent log record, e.g. the run id.
func SetAttrs(attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	defaultLogger = defaultLogger.With(args...)
}

// Tracef prints the message with TRACE severity in the specified format.
func Tracef(format string, v ...interface{}) {
	defaultLogger.Log(context.Background(), LevelTrace, fmt.Sprintf(format, v...))
}

// Debugf prints the message with DEBUG severity in the specified format.
func Debugf(format string, v ...interface{}) {
	defaultLogger.Debug(fmt.Sprintf(format, v...))
}

// Infof prints the message with INFO severity in the specified format.
func Infof(format string, v ...interface{}) {
	defaultLogger.Info(fmt.Sprintf(format, v...))
}

// Warnf prints the message with WARNING severity in the specified format.
func Warnf(format string, v ...interface{}) {
	defaultLogger.Warn(fmt.Sprintf(format, v...))
}

// Errorf prints the message with ERROR severity in the specified format.
func Errorf(format string, v ...interface{}) {
	defaultLogger.Error(fmt.Sprintf(format, v...))
}

type loggerFactory struct {
	// If nil, log to stderr. Otherwise, log to this file.
	file   *lumberjack.Logger
	format cfg.LogFormat
	level  cfg.LogSeverity
}

func (f *loggerFactory) newLogger(level cfg.LogSeverity) *slog.Logger {
	var programLevel = new(slog.LevelVar)
	logger := slog.New(f.handler(programLevel, ""))
	setLoggingLevel(level, programLevel)
	return logger
}

func (f *loggerFactory) writer() io.Writer {
	if f.file != nil {
		return f.file
	}
	return os.Stderr
}

func (f *loggerFactory) handler(levelVar *slog.LevelVar, prefix string) slog.Handler {
	return f.createJsonOrTextHandler(f.writer(), levelVar, prefix)
}

func (f *loggerFactory) createJsonOrTextHandler(writer io.Writer, levelVar *slog.LevelVar, prefix string) slog.Handler {
	if f.format == cfg.JSONLogFormat {
		return slog.NewJSONHandler(writer, getHandlerOptions(levelVar, prefix, f.format))
	}
	return slog.NewTextHandler(writer, getHandlerOptions(levelVar, prefix, f.format))
}

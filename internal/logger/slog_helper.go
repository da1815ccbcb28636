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
	"log/slog"

	"github.com/fpfbench/fpfbench/cfg"
)

const (
	// LevelTrace sits below slog.LevelDebug so that all the other levels are
	// logged when it is configured.
	LevelTrace = slog.Level(-8)
	// LevelOff sits above every level that is ever logged.
	LevelOff = slog.Level(12)

	severityKey  = "severity"
	messageKey   = "message"
	timestampKey = "timestamp"
	secondsKey   = "seconds"
	nanosKey     = "nanos"

	textTimeLayout = "02/01/2006 15:04:05.000000"
)

var levelNames = map[slog.Level]string{
	LevelTrace:      string(cfg.TraceLogSeverity),
	slog.LevelDebug: string(cfg.DebugLogSeverity),
	slog.LevelInfo:  string(cfg.InfoLogSeverity),
	slog.LevelWarn:  string(cfg.WarningLogSeverity),
	slog.LevelError: string(cfg.ErrorLogSeverity),
}

func setLoggingLevel(level cfg.LogSeverity, programLevel *slog.LevelVar) {
	// logs having severity >= the configured value will be logged.
	switch level {
	case cfg.TraceLogSeverity:
		programLevel.Set(LevelTrace)
	case cfg.DebugLogSeverity:
		programLevel.Set(slog.LevelDebug)
	case cfg.InfoLogSeverity:
		programLevel.Set(slog.LevelInfo)
	case cfg.WarningLogSeverity:
		programLevel.Set(slog.LevelWarn)
	case cfg.ErrorLogSeverity:
		programLevel.Set(slog.LevelError)
	case cfg.OffLogSeverity:
		programLevel.Set(LevelOff)
	}
}

func getHandlerOptions(levelVar *slog.LevelVar, prefix string, format cfg.LogFormat) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: levelVar,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.LevelKey:
				a.Key = severityKey
				level := a.Value.Any().(slog.Level)
				if name, ok := levelNames[level]; ok {
					a.Value = slog.StringValue(name)
				}
			case slog.TimeKey:
				currTime := a.Value.Time().Round(0)
				if format == cfg.JSONLogFormat {
					a.Key = timestampKey
					a.Value = slog.GroupValue(
						slog.Int64(secondsKey, currTime.Unix()),
						slog.Int64(nanosKey, int64(currTime.Nanosecond())))
				} else {
					a.Value = slog.StringValue(currTime.Format(textTimeLayout))
				}
			case slog.MessageKey:
				a.Key = messageKey
				a.Value = slog.StringValue(prefix + a.Value.String())
			}
			return a
		},
	}
}

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

package cfg

import (
	"fmt"
	"slices"
	"strings"
)

type LogSeverity string

const (
	TraceLogSeverity   LogSeverity = "TRACE"
	DebugLogSeverity   LogSeverity = "DEBUG"
	InfoLogSeverity    LogSeverity = "INFO"
	WarningLogSeverity LogSeverity = "WARNING"
	ErrorLogSeverity   LogSeverity = "ERROR"
	OffLogSeverity     LogSeverity = "OFF"
)

var severityRanking = map[LogSeverity]int{
	TraceLogSeverity:   0,
	DebugLogSeverity:   1,
	InfoLogSeverity:    2,
	WarningLogSeverity: 3,
	ErrorLogSeverity:   4,
	OffLogSeverity:     5,
}

func (l *LogSeverity) UnmarshalText(text []byte) error {
	level := LogSeverity(strings.ToUpper(string(text)))
	if _, ok := severityRanking[level]; !ok {
		return fmt.Errorf("invalid log severity level: %s. Must be one of [TRACE, DEBUG, INFO, WARNING, ERROR, OFF]", text)
	}
	*l = level
	return nil
}

// Rank orders severities from TRACE (0) to OFF (5). Unknown values rank as
// OFF.
func (l LogSeverity) Rank() int {
	if rank, ok := severityRanking[l]; ok {
		return rank
	}
	return severityRanking[OffLogSeverity]
}

type LogFormat string

const (
	TextLogFormat LogFormat = "text"
	JSONLogFormat LogFormat = "json"
)

func (f *LogFormat) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []LogFormat{TextLogFormat, JSONLogFormat}, "log format", f)
}

type StoreType string

const (
	LocalStoreType StoreType = "local"
	GCSStoreType   StoreType = "gcs"
	S3StoreType    StoreType = "s3"
)

func (s *StoreType) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []StoreType{LocalStoreType, GCSStoreType, S3StoreType}, "store", s)
}

type ReportFormat string

const (
	TextReportFormat ReportFormat = "text"
	HTMLReportFormat ReportFormat = "html"
)

func (r *ReportFormat) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, []ReportFormat{TextReportFormat, HTMLReportFormat}, "report format", r)
}

func unmarshalEnum[T ~string](text []byte, allowed []T, what string, dst *T) error {
	v := T(strings.ToLower(string(text)))
	if !slices.Contains(allowed, v) {
		return fmt.Errorf("invalid %s value: %s. It can only accept values in the list: %v", what, text, allowed)
	}
	*dst = v
	return nil
}

// ResolvedPath represents a file-path which is an absolute path. Relative
// paths are resolved against the working directory and a leading "~/" against
// the home directory.
type ResolvedPath string

func (p *ResolvedPath) UnmarshalText(text []byte) error {
	path, err := resolvePath(string(text))
	if err != nil {
		return err
	}
	*p = ResolvedPath(path)
	return nil
}

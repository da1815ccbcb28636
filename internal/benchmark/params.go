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

package benchmark

import (
	"math"
	"strconv"

	"github.com/fpfbench/fpfbench/internal/size"
)

const (
	MinFileCount = 50
	MaxFileCount = 5000

	MinFileSize uint64 = 1
	MaxFileSize uint64 = 10 * size.Megabyte

	MinWriteSize uint32 = 128
	MaxWriteSize uint32 = 64 * 1024

	MinIterations = 1
	MaxIterations = math.MaxInt32
)

// RawParams holds the run parameters as supplied on the command line or in
// the config file.
type RawParams struct {
	Iterations int64
	FileSize   string
	WriteSize  string
	FileCount  int64
}

// Params are validated run parameters.
type Params struct {
	Iterations int
	FileSize   uint64
	WriteSize  uint32
	FileCount  int
}

// Validate checks, in order, the file size, the write size, the file count
// and the iteration count, and fails on the first violation. It performs no
// I/O.
func Validate(raw RawParams) (Params, error) {
	fileSize, err := size.Parse(raw.FileSize)
	if err != nil {
		return Params{}, &ParseError{Param: "filesize", Text: raw.FileSize, Err: err}
	}
	if fileSize < MinFileSize || fileSize > MaxFileSize {
		return Params{}, &ParameterError{
			Param: "filesize",
			Value: strconv.FormatUint(fileSize, 10),
			Min:   MinFileSize,
			Max:   MaxFileSize,
		}
	}

	writeSize, err := size.ParseUint32(raw.WriteSize)
	if err != nil {
		return Params{}, &ParseError{Param: "writesize", Text: raw.WriteSize, Err: err}
	}
	if writeSize < MinWriteSize || writeSize > MaxWriteSize {
		return Params{}, &ParameterError{
			Param: "writesize",
			Value: strconv.FormatUint(uint64(writeSize), 10),
			Min:   uint64(MinWriteSize),
			Max:   uint64(MaxWriteSize),
		}
	}

	if raw.FileCount < MinFileCount || raw.FileCount > MaxFileCount {
		return Params{}, &ParameterError{
			Param: "filecount",
			Value: strconv.FormatInt(raw.FileCount, 10),
			Min:   MinFileCount,
			Max:   MaxFileCount,
		}
	}

	if raw.Iterations < MinIterations || raw.Iterations > MaxIterations {
		return Params{}, &ParameterError{
			Param: "iterations",
			Value: strconv.FormatInt(raw.Iterations, 10),
			Min:   MinIterations,
			Max:   MaxIterations,
		}
	}

	return Params{
		Iterations: int(raw.Iterations),
		FileSize:   fileSize,
		WriteSize:  writeSize,
		FileCount:  int(raw.FileCount),
	}, nil
}

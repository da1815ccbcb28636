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

// fpfbench measures how long a file server takes to create many files of a
// fixed size in a single folder.
//
// Usage:
//
//	fpfbench --root /mnt/share [--iterations 1] [--filesize 4K] [--writesize 4K] [--filecount 2000]
package main

import (
	"github.com/fpfbench/fpfbench/cmd"
	"github.com/fpfbench/fpfbench/internal/logger"
)

func logPanic() {
	if r := recover(); r != nil {
		logger.Errorf("Panic: %v", r)
		panic(r)
	}
}

func main() {
	defer logPanic()
	cmd.Execute()
}

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

// Package store defines the remote file store the benchmark drives, and the
// errors its implementations share. Implementations live in the sub-packages.
package store

import (
	"context"
	"errors"
	"io"
)

// ErrFolderExists is returned, wrapped, by CreateFolder when the folder is
// already present.
var ErrFolderExists = errors.New("folder already exists")

// FileStore is the collaborator the benchmark creates folders and files in.
// Names are slash-separated and relative to the store's root.
type FileStore interface {
	// CreateFolder creates the named folder. Parent folders must exist.
	CreateFolder(ctx context.Context, name string) error

	// CreateFile creates the named file, empty. An existing file is truncated.
	CreateFile(ctx context.Context, name string) error

	// Exists reports whether the named file or folder is present.
	Exists(ctx context.Context, name string) (bool, error)

	// OpenForWrite opens the named file for writing from offset zero. The
	// caller must close the returned stream; for object stores the data is
	// persisted on Close.
	OpenForWrite(ctx context.Context, name string) (io.WriteCloser, error)
}

// Flusher is implemented by streams that buffer writes and can push them to
// the server before Close.
type Flusher interface {
	Flush() error
}

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

// Package local implements store.FileStore on a local directory. Pointed at
// the mount point of a network share (NFS, SMB, FUSE), it measures the file
// server behind that mount.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fpfbench/fpfbench/internal/store"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

type Store struct {
	root string
}

var _ store.FileStore = &Store{}

// New returns a store rooted at root, which must be an existing directory.
func New(root string) (*Store, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root %q: %w", root, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", root)
	}
	return &Store{root: root}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

func (s *Store) CreateFolder(_ context.Context, name string) error {
	p := s.path(name)
	err := os.Mkdir(p, dirPerm)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		if fi, statErr := os.Stat(p); statErr == nil && fi.IsDir() {
			return fmt.Errorf("%w: %s", store.ErrFolderExists, name)
		}
	}
	return fmt.Errorf("mkdir %q: %w", name, err)
}

func (s *Store) CreateFile(_ context.Context, name string) error {
	f, err := os.OpenFile(s.path(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("create %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", name, err)
	}
	return nil
}

func (s *Store) Exists(_ context.Context, name string) (bool, error) {
	_, err := os.Stat(s.path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %q: %w", name, err)
}

func (s *Store) OpenForWrite(_ context.Context, name string) (io.WriteCloser, error) {
	f, err := os.OpenFile(s.path(name), os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	return f, nil
}

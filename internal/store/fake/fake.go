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

// Package fake provides an in-memory store.FileStore that records every call,
// for tests of code driving a store.
package fake

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fpfbench/fpfbench/internal/store"
)

type Op string

const (
	OpCreateFolder Op = "CreateFolder"
	OpCreateFile   Op = "CreateFile"
	OpExists       Op = "Exists"
	OpOpenForWrite Op = "OpenForWrite"
	OpWrite        Op = "Write"
	OpFlush        Op = "Flush"
	OpClose        Op = "Close"
)

// Call is one recorded interaction. Size is the length of the data for
// OpWrite and zero otherwise.
type Call struct {
	Op   Op
	Name string
	Size int
}

// Store is safe for concurrent use. The zero value is an empty store. Its
// exported hooks must be set before first use.
type Store struct {
	// CreateFolderErr, when set, is returned by every CreateFolder call.
	CreateFolderErr error
	// CreateFileErr, when set, is returned from the CreateFileErrAt'th (1-based)
	// CreateFile call; every call when CreateFileErrAt is zero.
	CreateFileErr   error
	CreateFileErrAt int
	// WriteErr, when set, is returned from the WriteErrAt'th (1-based) Write
	// call across all streams; every call when WriteErrAt is zero.
	WriteErr   error
	WriteErrAt int
	// CloseErr, when set, is returned by every stream Close.
	CloseErr error
	// HideFiles makes Exists report created files as missing.
	HideFiles bool
	// OnWrite is called after every successful Write, e.g. to advance a
	// simulated clock.
	OnWrite func(name string, n int)

	mu      sync.Mutex
	calls   []Call
	folders map[string]bool
	files   map[string][]byte
	creates int
	writes  int
}

var _ store.FileStore = &Store{}

func New() *Store {
	return &Store{
		folders: make(map[string]bool),
		files:   make(map[string][]byte),
	}
}

// initLocked creates the maps of a zero Store. Callers hold s.mu.
func (s *Store) initLocked() {
	if s.folders == nil {
		s.folders = make(map[string]bool)
		s.files = make(map[string][]byte)
	}
}

func (s *Store) record(c Call) {
	s.initLocked()
	s.calls = append(s.calls, c)
}

// Calls returns a copy of the recorded calls, in order.
func (s *Store) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallsOf returns the recorded calls with the given op, in order.
func (s *Store) CallsOf(op Op) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Call
	for _, c := range s.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Content returns the data of the named file and whether it exists.
func (s *Store) Content(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[name]
	return data, ok
}

// AddFolder makes name exist without recording a call.
func (s *Store) AddFolder(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
	s.folders[name] = true
}

func (s *Store) parentExists(name string) bool {
	i := strings.LastIndex(name, "/")
	return i < 0 || s.folders[name[:i]]
}

func (s *Store) CreateFolder(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Call{Op: OpCreateFolder, Name: name})

	if s.CreateFolderErr != nil {
		return s.CreateFolderErr
	}
	if s.folders[name] {
		return fmt.Errorf("%w: %s", store.ErrFolderExists, name)
	}
	if !s.parentExists(name) {
		return fmt.Errorf("create folder %q: parent missing", name)
	}
	s.folders[name] = true
	return nil
}

func (s *Store) CreateFile(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Call{Op: OpCreateFile, Name: name})

	s.creates++
	if s.CreateFileErr != nil && (s.CreateFileErrAt == 0 || s.CreateFileErrAt == s.creates) {
		return s.CreateFileErr
	}
	if !s.parentExists(name) {
		return fmt.Errorf("create %q: parent missing", name)
	}
	s.files[name] = nil
	return nil
}

func (s *Store) Exists(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Call{Op: OpExists, Name: name})

	if s.folders[name] {
		return true, nil
	}
	_, ok := s.files[name]
	return ok && !s.HideFiles, nil
}

func (s *Store) OpenForWrite(_ context.Context, name string) (io.WriteCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Call{Op: OpOpenForWrite, Name: name})

	if _, ok := s.files[name]; !ok {
		return nil, fmt.Errorf("open %q: no such file", name)
	}
	s.files[name] = nil
	return &stream{s: s, name: name}, nil
}

type stream struct {
	s      *Store
	name   string
	closed bool
}

func (w *stream) Write(p []byte) (int, error) {
	w.s.mu.Lock()
	w.s.record(Call{Op: OpWrite, Name: w.name, Size: len(p)})
	w.s.writes++
	if w.closed {
		w.s.mu.Unlock()
		return 0, fmt.Errorf("write %q: stream closed", w.name)
	}
	if w.s.WriteErr != nil && (w.s.WriteErrAt == 0 || w.s.WriteErrAt == w.s.writes) {
		w.s.mu.Unlock()
		return 0, w.s.WriteErr
	}
	w.s.files[w.name] = append(w.s.files[w.name], p...)
	onWrite := w.s.OnWrite
	w.s.mu.Unlock()

	if onWrite != nil {
		onWrite(w.name, len(p))
	}
	return len(p), nil
}

func (w *stream) Flush() error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.record(Call{Op: OpFlush, Name: w.name})
	return nil
}

func (w *stream) Close() error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.record(Call{Op: OpClose, Name: w.name})
	w.closed = true
	return w.s.CloseErr
}

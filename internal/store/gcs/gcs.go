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

// Package gcs implements store.FileStore on a Cloud Storage bucket. Folders
// are zero-length placeholder objects whose names end in a slash, the layout
// the Cloud console and FUSE adapters with implicit directories understand.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/fpfbench/fpfbench/internal/store"
	"google.golang.org/api/option"
)

type Store struct {
	bucket *storage.BucketHandle
	prefix string
}

var _ store.FileStore = &Store{}

// NewClient returns a storage client for the given endpoint, or for the
// production endpoint when endpoint is empty.
func NewClient(ctx context.Context, endpoint string) (*storage.Client, error) {
	var opts []option.ClientOption
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint), option.WithoutAuthentication())
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return client, nil
}

// New returns a store for bucketName. Every name is placed under prefix,
// which may be empty.
func New(client *storage.Client, bucketName string, prefix string) *Store {
	return &Store{
		bucket: client.Bucket(bucketName),
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *Store) objectName(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *Store) folderObject(name string) *storage.ObjectHandle {
	return s.bucket.Object(s.objectName(name) + "/")
}

func (s *Store) exists(ctx context.Context, obj *storage.ObjectHandle) (bool, error) {
	_, err := obj.Attrs(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	return false, err
}

func writeEmpty(ctx context.Context, obj *storage.ObjectHandle) error {
	w := obj.NewWriter(ctx)
	if err := w.Close(); err != nil {
		return err
	}
	return nil
}

func (s *Store) CreateFolder(ctx context.Context, name string) error {
	obj := s.folderObject(name)
	exists, err := s.exists(ctx, obj)
	if err != nil {
		return fmt.Errorf("stat folder %q: %w", name, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", store.ErrFolderExists, name)
	}
	if err := writeEmpty(ctx, obj); err != nil {
		return fmt.Errorf("create folder %q: %w", name, err)
	}
	return nil
}

func (s *Store) CreateFile(ctx context.Context, name string) error {
	if err := writeEmpty(ctx, s.bucket.Object(s.objectName(name))); err != nil {
		return fmt.Errorf("create %q: %w", name, err)
	}
	return nil
}

// Exists reports a file object, or a folder placeholder, under name.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := s.exists(ctx, s.bucket.Object(s.objectName(name)))
	if err != nil || exists {
		return exists, err
	}
	return s.exists(ctx, s.folderObject(name))
}

func (s *Store) OpenForWrite(ctx context.Context, name string) (io.WriteCloser, error) {
	return s.bucket.Object(s.objectName(name)).NewWriter(ctx), nil
}

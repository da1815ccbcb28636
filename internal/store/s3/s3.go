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

// Package s3 implements store.FileStore on an S3 (or S3-compatible) bucket.
// Folders are zero-length objects whose keys end in a slash. A write stream
// buffers the file and uploads it with a single PutObject on Close; files are
// bounded at a few megabytes so the buffer stays small.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/fpfbench/fpfbench/internal/store"
)

// API is the subset of *s3.Client used by the store.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type Store struct {
	client API
	bucket string
	prefix string
}

var _ store.FileStore = &Store{}

// NewClient loads the default AWS configuration for region. A non-empty
// endpoint switches to path-style addressing against that endpoint, as needed
// by MinIO and other emulators; static credentials are then taken from
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY when both are set.
func NewClient(ctx context.Context, region string, endpoint string) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if endpoint != "" {
		id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id != "" && secret != "" {
			opts = append(opts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(id, secret, "")))
		}
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS configuration: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// New returns a store for bucket. Every key is placed under prefix, which may
// be empty.
func New(client API, bucket string, prefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *Store) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}

func (s *Store) head(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}

func (s *Store) put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	return err
}

func (s *Store) CreateFolder(ctx context.Context, name string) error {
	key := s.key(name) + "/"
	exists, err := s.head(ctx, key)
	if err != nil {
		return fmt.Errorf("stat folder %q: %w", name, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", store.ErrFolderExists, name)
	}
	if err := s.put(ctx, key, nil); err != nil {
		return fmt.Errorf("create folder %q: %w", name, err)
	}
	return nil
}

func (s *Store) CreateFile(ctx context.Context, name string) error {
	if err := s.put(ctx, s.key(name), nil); err != nil {
		return fmt.Errorf("create %q: %w", name, err)
	}
	return nil
}

// Exists reports a file object, or a folder placeholder, under name.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := s.head(ctx, s.key(name))
	if err != nil || exists {
		return exists, err
	}
	return s.head(ctx, s.key(name)+"/")
}

func (s *Store) OpenForWrite(ctx context.Context, name string) (io.WriteCloser, error) {
	return &objectWriter{ctx: ctx, s: s, key: s.key(name)}, nil
}

type objectWriter struct {
	ctx    context.Context
	s      *Store
	key    string
	buf    bytes.Buffer
	closed bool
}

func (w *objectWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("write %q: stream closed", w.key)
	}
	return w.buf.Write(p)
}

// Close uploads the buffered content. Calling Close again is a no-op.
func (w *objectWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.s.put(w.ctx, w.key, w.buf.Bytes()); err != nil {
		return fmt.Errorf("upload %q: %w", w.key, err)
	}
	return nil
}

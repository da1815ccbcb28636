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

package s3

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/fpfbench/fpfbench/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI keeps objects in memory, keyed by bucket/key.
type fakeAPI struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int
	putErr  error
	headErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{objects: make(map[string][]byte)}
}

func (f *fakeAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = data
	f.puts++
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeAPI) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.headErr != nil {
		return nil, f.headErr
	}
	data, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(data)))}, nil
}

func TestCreateFolder(t *testing.T) {
	api := newFakeAPI()
	s := New(api, "bucket", "bench")

	require.NoError(t, s.CreateFolder(context.Background(), "iter_0"))

	_, ok := api.objects["bucket/bench/iter_0/"]
	assert.True(t, ok)
}

func TestCreateFolderExisting(t *testing.T) {
	api := newFakeAPI()
	s := New(api, "bucket", "")
	require.NoError(t, s.CreateFolder(context.Background(), "iter_0"))

	err := s.CreateFolder(context.Background(), "iter_0")

	assert.ErrorIs(t, err, store.ErrFolderExists)
	assert.Equal(t, 1, api.puts)
}

func TestCreateFolderHeadFailure(t *testing.T) {
	api := newFakeAPI()
	api.headErr = errors.New("connection reset")
	s := New(api, "bucket", "")

	err := s.CreateFolder(context.Background(), "iter_0")

	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrFolderExists)
}

func TestExists(t *testing.T) {
	api := newFakeAPI()
	s := New(api, "bucket", "/bench/")
	ctx := context.Background()
	require.NoError(t, s.CreateFolder(ctx, "iter_0"))

	exists, err := s.Exists(ctx, "iter_0")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Exists(ctx, "iter_0/aaa.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.CreateFile(ctx, "iter_0/aaa.txt"))

	exists, err = s.Exists(ctx, "iter_0/aaa.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOpenForWriteUploadsOnClose(t *testing.T) {
	api := newFakeAPI()
	s := New(api, "bucket", "")
	ctx := context.Background()

	w, err := s.OpenForWrite(ctx, "f.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = w.Write([]byte("def"))
	require.NoError(t, err)
	assert.Equal(t, 0, api.puts)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	assert.Equal(t, 1, api.puts)
	assert.Equal(t, "abcdef", string(api.objects["bucket/f.txt"]))
	_, err = w.Write([]byte("x"))
	assert.Error(t, err)
}

func TestOpenForWriteUploadFailure(t *testing.T) {
	api := newFakeAPI()
	api.putErr = errors.New("access denied")
	s := New(api, "bucket", "")

	w, err := s.OpenForWrite(context.Background(), "f.txt")
	require.NoError(t, err)

	assert.Error(t, w.Close())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&types.NotFound{}))
	assert.True(t, isNotFound(&types.NoSuchKey{}))
	assert.False(t, isNotFound(errors.New("boom")))
}

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

package fake

import (
	"context"
	"errors"
	"testing"

	"github.com/fpfbench/fpfbench/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroStore_CreateAndWrite(t *testing.T) {
	var s Store
	ctx := context.Background()

	require.NoError(t, s.CreateFolder(ctx, "dir"))
	require.NoError(t, s.CreateFile(ctx, "dir/a.txt"))
	w, err := s.OpenForWrite(ctx, "dir/a.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, ok := s.Content("dir/a.txt")
	assert.True(t, ok)
	assert.Equal(t, []byte("abc"), data)
	assert.Len(t, s.Calls(), 5)
}

func TestZeroStore_AddFolder(t *testing.T) {
	var s Store
	s.AddFolder("dir")

	err := s.CreateFolder(context.Background(), "dir")

	assert.True(t, errors.Is(err, store.ErrFolderExists))
}

func TestZeroStore_ReadsBeforeAnyCall(t *testing.T) {
	var s Store

	_, ok := s.Content("missing")
	assert.False(t, ok)
	assert.Empty(t, s.Calls())
}

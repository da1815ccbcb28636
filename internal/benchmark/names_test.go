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
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectedPrefix(index int) string {
	i := index % 52
	if i < 26 {
		return strings.Repeat(string(rune('a'+i)), 3)
	}
	return strings.Repeat(string(rune('A'+i-26)), 3)
}

func TestPrefix_Rotation(t *testing.T) {
	for index := 1; index <= MaxFileCount; index++ {
		require.Equal(t, expectedPrefix(index), Prefix(index), "index %d", index)
	}
}

func TestPrefix_TableEnds(t *testing.T) {
	assert.Equal(t, "bbb", Prefix(1))
	assert.Equal(t, "zzz", Prefix(25))
	assert.Equal(t, "AAA", Prefix(26))
	assert.Equal(t, "ZZZ", Prefix(51))
	assert.Equal(t, "aaa", Prefix(52))
	assert.Equal(t, "aaa", Prefix(0))
}

func TestNextName_Layout(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	re := regexp.MustCompile(`^PerfFilesPerFolder_0/ccc_FilesPerFolder_2_[0-9a-f]{1,16}\.txt$`)

	name := NextName("PerfFilesPerFolder_0", 2, rng)

	assert.Regexp(t, re, name)
}

func TestNextName_PrefixIndependentOfRandomness(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, index := range []int{1, 51, 52, 53, 2000, 5000} {
			name := NextName("dir", index, rng)

			assert.True(t, strings.HasPrefix(name, "dir/"+expectedPrefix(index)+"_FilesPerFolder_"), name)
		}
	}
}

func TestNextName_FreshRandomnessPerCall(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	first := NextName("dir", 7, rng)
	second := NextName("dir", 7, rng)

	assert.NotEqual(t, first, second)
}

func TestNextName_SeededSourceIsReproducible(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))

	for index := 1; index <= 100; index++ {
		assert.Equal(t, NextName("dir", index, a), NextName("dir", index, b))
	}
}

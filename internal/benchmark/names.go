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
	"path"
	"strconv"
)

const (
	fileNameInfix = "_FilesPerFolder_"
	fileNameExt   = ".txt"
)

var prefixes = [...]string{
	"aaa", "bbb", "ccc", "ddd", "eee", "fff", "ggg", "hhh", "iii", "jjj", "kkk", "lll", "mmm",
	"nnn", "ooo", "ppp", "qqq", "rrr", "sss", "ttt", "uuu", "vvv", "www", "xxx", "yyy", "zzz",
	"AAA", "BBB", "CCC", "DDD", "EEE", "FFF", "GGG", "HHH", "III", "JJJ", "KKK", "LLL", "MMM",
	"NNN", "OOO", "PPP", "QQQ", "RRR", "SSS", "TTT", "UUU", "VVV", "WWW", "XXX", "YYY", "ZZZ",
}

// Prefix returns the rotating name prefix for a 1-based file index.
func Prefix(index int) string {
	i := index % len(prefixes)
	if i < 0 {
		i += len(prefixes)
	}
	return prefixes[i]
}

// NextName returns a fresh file name for index within folder, of the form
// <prefix>_FilesPerFolder_<index>_<hex>.txt. Each call draws a new 64-bit
// suffix from rng, so repeated calls for one index differ.
func NextName(folder string, index int, rng *rand.Rand) string {
	name := Prefix(index) + fileNameInfix + strconv.Itoa(index) + "_" +
		strconv.FormatUint(rng.Uint64(), 16) + fileNameExt
	return path.Join(folder, name)
}

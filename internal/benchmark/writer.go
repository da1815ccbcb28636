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
	"fmt"
	"io"

	"github.com/fpfbench/fpfbench/internal/store"
)

// FillPattern sets every byte of buf to b.
func FillPattern(buf []byte, b byte) {
	for i := range buf {
		buf[i] = b
	}
}

// WriteToSize writes the whole of buf to w until at least target bytes have
// been written, then flushes w if it is a store.Flusher. The result is
// ceil(target/len(buf)) writes, so the file may exceed target by less than
// one buffer. The returned count includes any partial write.
func WriteToSize(w io.Writer, buf []byte, target uint64) (uint64, error) {
	if len(buf) == 0 {
		return 0, fmt.Errorf("%w: empty write buffer", ErrWrite)
	}

	var written uint64
	for written < target {
		n, err := w.Write(buf)
		written += uint64(n)
		if err != nil {
			return written, fmt.Errorf("%w: after %d bytes: %w", ErrWrite, written, err)
		}
		if n < len(buf) {
			return written, fmt.Errorf("%w: after %d bytes: %w", ErrWrite, written, io.ErrShortWrite)
		}
	}

	if f, ok := w.(store.Flusher); ok {
		if err := f.Flush(); err != nil {
			return written, fmt.Errorf("%w: flush: %w", ErrWrite, err)
		}
	}
	return written, nil
}

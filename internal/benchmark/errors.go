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
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed parameter")
	// ErrInvalidParameter is matched by every *ParameterError.
	ErrInvalidParameter = errors.New("invalid parameter")

	ErrFolderCreate = errors.New("folder create failed")
	ErrFileCreate   = errors.New("file create failed")
	ErrWrite        = errors.New("write failed")
)

// ParseError reports a size parameter whose text is not a valid size.
type ParseError struct {
	Param string
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s %q: %v", ErrParse, e.Param, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// ParameterError reports a parameter outside its allowed range, bounds
// included.
type ParameterError struct {
	Param string
	Value string
	Min   uint64
	Max   uint64
}

func (e *ParameterError) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("%v: %s is %s, must be at least %d", ErrInvalidParameter, e.Param, e.Value, e.Min)
	}
	return fmt.Sprintf("%v: %s is %s, must be in [%d, %d]", ErrInvalidParameter, e.Param, e.Value, e.Min, e.Max)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

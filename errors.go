// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gobtfw

import (
	"errors"
	"fmt"
)

// ErrEmptyFirmwareKey is returned by FirmwareStore.GetFirmware when the
// device has no firmware key configured. No source is attempted.
var ErrEmptyFirmwareKey = errors.New("no firmware key configured")

// SourceNotFoundError indicates every firmware source was exhausted without
// yielding any bytes for the key.
type SourceNotFoundError struct {
	Key string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("no firmware source for key %q", e.Key)
}

// DecompressionError indicates the blob carried a zlib envelope but could
// not be inflated.
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("decompressing firmware: %v", e.Err)
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// FormatError indicates the blob is not valid Intel HEX firmware: a missing
// record prefix, a truncated stream, an unsupported or unknown record type.
// Offset is the byte position of the offending record in the decompressed
// blob.
type FormatError struct {
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid firmware at offset %d: %s", e.Offset, e.Reason)
}

// ChecksumError indicates a record failed its two's-complement checksum.
type ChecksumError struct {
	Offset   int
	Expected byte
	Actual   byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("firmware checksum mismatch at offset %d: expected 0x%02X, got 0x%02X",
		e.Offset, e.Expected, e.Actual)
}

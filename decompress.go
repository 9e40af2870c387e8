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

// Firmware blob decompression.
package gobtfw

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/golang/glog"
)

// IsCompressed reports whether blob starts with one of the three zlib
// header pairs (no compression, default compression, best compression).
func IsCompressed(blob []byte) bool {
	if len(blob) < 2 || blob[0] != 0x78 {
		return false
	}
	switch blob[1] {
	case 0x01, 0x9c, 0xda:
		return true
	}
	return false
}

// DecompressFirmware inflates blob if it carries a zlib envelope.
// Blobs without the envelope are returned as-is.
func DecompressFirmware(blob []byte) ([]byte, error) {
	if !IsCompressed(blob) {
		return blob, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, &DecompressionError{err}
	}
	defer zr.Close()

	// Firmware images stay well under a 4:1 ratio; start from that bound
	// to avoid regrowing the buffer during inflate.
	out := bytes.NewBuffer(make([]byte, 0, len(blob)*4))
	if _, err = io.Copy(out, zr); err != nil {
		return nil, &DecompressionError{err}
	}

	glog.V(1).Infof("Decompressed firmware (%d bytes --> %d bytes)", len(blob), out.Len())
	return out.Bytes(), nil
}

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

package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestHexFileRoundTrip(t *testing.T) {
	data := make([]byte, 48)
	for i := range data {
		data[i] = byte(i * 7)
	}
	seg := &Segment{Address: 0x00210000, Data: data}

	file := filepath.Join(t.TempDir(), "fw.hex")
	if err := WriteIntelHexFile(file, seg); err != nil {
		t.Fatalf("WriteIntelHexFile failed: %v", err)
	}

	loaded, err := LoadIntelHexFile(file)
	if err != nil {
		t.Fatalf("LoadIntelHexFile failed: %v", err)
	}
	if loaded.Address != seg.Address {
		t.Errorf("Address = %#x, want %#x", loaded.Address, seg.Address)
	}
	if !bytes.Equal(loaded.Data, seg.Data) {
		t.Errorf("Data mismatch: % x", loaded.Data)
	}
}

func TestLoadIntelHexFileRejectsBadInput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fw.hex")
	if err := os.WriteFile(file, []byte("not intel hex\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadIntelHexFile(file); err == nil {
		t.Error("LoadIntelHexFile expected to fail")
	}
}

func TestLoadIntelHexFileMissing(t *testing.T) {
	if _, err := LoadIntelHexFile(filepath.Join(t.TempDir(), "absent.hex")); err == nil {
		t.Error("LoadIntelHexFile expected to fail")
	}
}

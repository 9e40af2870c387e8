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

package gobtfw_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/google/gobtfw"
	"github.com/google/gobtfw/mocks"

	"github.com/golang/mock/gomock"
)

func TestStoreMemoizesSuccessfulLoads(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	instructions := gobtfw.InstructionSequence{
		{Address: 0x0100, Payload: []byte{0xaa, 0xbb}},
	}
	loader := mocks.NewMockLoaderInterface(mockCtrl)
	// The loader runs once; the second get is served from cache.
	loader.EXPECT().
		LoadFirmware(uint16(testVid), uint16(testPid), testKey).
		Return(instructions, nil).
		Times(1)

	s := gobtfw.NewFirmwareStore(loader)
	first, err := s.GetFirmware(testVid, testPid, testKey)
	if err != nil {
		t.Fatalf("GetFirmware failed: %v", err)
	}
	second, err := s.GetFirmware(testVid, testPid, testKey)
	if err != nil {
		t.Fatalf("GetFirmware failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("Sequence lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Address != second[i].Address ||
			!bytes.Equal(first[i].Payload, second[i].Payload) {
			t.Errorf("Instruction %d differs between gets", i)
		}
	}
}

func TestStoreDoesNotCacheFailedLoads(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	loader := mocks.NewMockLoaderInterface(mockCtrl)
	// Failed loads leave no trace; every get retries.
	loader.EXPECT().
		LoadFirmware(uint16(testVid), uint16(testPid), testKey).
		Return(nil, &gobtfw.SourceNotFoundError{Key: testKey}).
		Times(2)

	s := gobtfw.NewFirmwareStore(loader)
	for i := 0; i < 2; i++ {
		if _, err := s.GetFirmware(testVid, testPid, testKey); err == nil {
			t.Error("GetFirmware expected to fail")
		}
	}
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// No load is attempted for an empty key.
	loader := mocks.NewMockLoaderInterface(mockCtrl)

	s := gobtfw.NewFirmwareStore(loader)
	_, err := s.GetFirmware(testVid, testPid, "")
	if !errors.Is(err, gobtfw.ErrEmptyFirmwareKey) {
		t.Errorf("GetFirmware = %v, want ErrEmptyFirmwareKey", err)
	}
}

func TestStoreSerializesConcurrentGets(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	instructions := gobtfw.InstructionSequence{
		{Address: 0x0100, Payload: []byte{0xaa}},
	}
	loader := mocks.NewMockLoaderInterface(mockCtrl)
	// Concurrent gets for the same key still load at most once.
	loader.EXPECT().
		LoadFirmware(uint16(testVid), uint16(testPid), testKey).
		Return(instructions, nil).
		Times(1)

	s := gobtfw.NewFirmwareStore(loader)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.GetFirmware(testVid, testPid, testKey); err != nil {
				t.Errorf("GetFirmware failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

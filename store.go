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

// Memoizing firmware store.
package gobtfw

import (
	"sync"

	"github.com/golang/glog"
)

// FirmwareStore caches decoded firmware by key. A cache entry exists only
// for loads that fully succeeded; failed loads leave no trace and are
// retried on the next request. Entries are never evicted and the cached
// sequences are immutable, so lookups after insertion need no copying.
//
// The store mutex is held for the full duration of a miss, which
// serializes all callers behind the load in flight. At most one firmware
// load runs process-wide, so concurrent requests for the same key never
// duplicate fetch traffic.
type FirmwareStore struct {
	mu        sync.Mutex
	loader    LoaderInterface
	firmwares map[string]InstructionSequence
}

func NewFirmwareStore(loader LoaderInterface) *FirmwareStore {
	return &FirmwareStore{
		loader:    loader,
		firmwares: make(map[string]InstructionSequence),
	}
}

// GetFirmware returns the instruction sequence for firmwareKey, loading and
// caching it on first use. Returns an error when no firmware is available;
// the caller decides whether that is fatal.
func (s *FirmwareStore) GetFirmware(vendorID, productID uint16, firmwareKey string) (InstructionSequence, error) {
	if firmwareKey == "" {
		glog.Warning("Current device has no firmware key configured")
		return nil, ErrEmptyFirmwareKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if instructions, ok := s.firmwares[firmwareKey]; ok {
		glog.V(1).Infof("Retrieved cached firmware for %q", firmwareKey)
		return instructions, nil
	}

	instructions, err := s.loader.LoadFirmware(vendorID, productID, firmwareKey)
	if err != nil {
		glog.Warningf("No firmware available for key %q: %v", firmwareKey, err)
		return nil, err
	}

	s.firmwares[firmwareKey] = instructions
	return instructions, nil
}

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

// Firmware acquisition and decoding.
package gobtfw

import (
	"fmt"

	"github.com/golang/glog"
)

// Firmware resource file extensions, tried in this order for each filename
// stem.
const (
	CompressedExt   = "zhx"
	UncompressedExt = "hex"
)

//go:generate mockgen -destination=mocks/loader.go -package=mocks github.com/google/gobtfw LoaderInterface,EmbeddedStoreInterface
type LoaderInterface interface {
	LoadFirmware(vendorID, productID uint16, firmwareKey string) (InstructionSequence, error)
}

// Lookup of firmware images compiled into the binary.
type EmbeddedStoreInterface interface {
	Lookup(name string) ([]byte, bool)
}

// Loader resolves a firmware key to a decoded instruction sequence.
// Byte sources are tried in fixed priority order: disk resources named after
// the device ids, disk resources named after the key, embedded images, and
// finally the configuration-supplied firmware map. The first source that
// yields data wins; its bytes go through decompression and Intel HEX
// parsing.
type Loader struct {
	fetcher *AsyncFetcher
	// Optional embedded image table.
	embedded EmbeddedStoreInterface
	// Configuration-supplied key to blob mapping, queried last.
	firmwares map[string][]byte
}

func NewLoader(fetcher ResourceFetcherInterface, embedded EmbeddedStoreInterface,
	firmwares map[string][]byte) *Loader {
	return &Loader{NewAsyncFetcher(fetcher), embedded, firmwares}
}

func (l *Loader) loadFile(stem, ext string) ([]byte, error) {
	return l.fetcher.Fetch(fmt.Sprintf("%s.%s", stem, ext))
}

// Tries the four disk resource names in priority order.
func (l *Loader) loadFiles(vendorID, productID uint16, firmwareKey string) ([]byte, error) {
	stems := []string{fmt.Sprintf("%04x_%04x", vendorID, productID), firmwareKey}
	for _, stem := range stems {
		for _, ext := range []string{CompressedExt, UncompressedExt} {
			data, err := l.loadFile(stem, ext)
			if err != nil {
				return nil, err
			}
			if data != nil {
				return data, nil
			}
		}
	}
	return nil, nil
}

func (l *Loader) LoadFirmware(vendorID, productID uint16, firmwareKey string) (InstructionSequence, error) {
	glog.V(1).Infof("Loading firmware for key %q", firmwareKey)

	data, err := l.loadFiles(vendorID, productID, firmwareKey)
	if err != nil {
		return nil, err
	}

	if data == nil && l.embedded != nil {
		for _, ext := range []string{CompressedExt, UncompressedExt} {
			name := fmt.Sprintf("%s.%s", firmwareKey, ext)
			if blob, ok := l.embedded.Lookup(name); ok {
				glog.Infof("Loaded embedded firmware %q", name)
				data = blob
				break
			}
		}
	}

	if data == nil {
		if blob, ok := l.firmwares[firmwareKey]; ok {
			glog.Infof("Retrieved firmware %q from configuration", firmwareKey)
			data = blob
		}
	}

	if data == nil {
		return nil, &SourceNotFoundError{firmwareKey}
	}

	firmware, err := DecompressFirmware(data)
	if err != nil {
		return nil, err
	}

	instructions, err := ParseFirmware(firmware)
	if err != nil {
		return nil, err
	}

	glog.Infof("Loaded valid IntelHex firmware for key %q (%d instructions)",
		firmwareKey, len(instructions))
	return instructions, nil
}

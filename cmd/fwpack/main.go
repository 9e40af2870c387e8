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

// Packs firmware for distribution.
// A .bin input is first encoded as Intel HEX; the HEX text is then
// zlib-compressed into a .zhx resource the firmware store can consume.
package main

import (
	"compress/zlib"
	"flag"
	"os"
	"path"
	"strings"

	"github.com/google/gobtfw/util"

	"github.com/golang/glog"
)

var (
	inputFlag  = flag.String("input", "", ".hex or .bin firmware file name")
	outputFlag = flag.String("output", "", "Output .zhx file name (default: input stem)")
	baseFlag   = flag.Uint("base", 0, "RAM base address for .bin inputs")
)

func init() {
	flag.Parse()
}

func hexFromBin(binFile string) (string, error) {
	data, err := os.ReadFile(binFile)
	if err != nil {
		return "", err
	}
	hexFile := strings.TrimSuffix(binFile, path.Ext(binFile)) + ".hex"
	seg := &util.Segment{Address: uint32(*baseFlag), Data: data}
	if err = util.WriteIntelHexFile(hexFile, seg); err != nil {
		return "", err
	}
	glog.Infof("Encoded %q as %q", binFile, hexFile)
	return hexFile, nil
}

func main() {
	defer glog.Flush()

	if len(*inputFlag) == 0 {
		glog.Fatal("Missing --input argument")
	}

	hexFile := *inputFlag
	var err error
	if path.Ext(hexFile) == ".bin" {
		if hexFile, err = hexFromBin(hexFile); err != nil {
			glog.Fatalf("Failed encoding binary input: %v", err)
		}
	}
	if path.Ext(hexFile) != ".hex" {
		glog.Fatal("Expected .hex or .bin input file")
	}

	// Reject inputs the firmware store could never decode.
	seg, err := util.LoadIntelHexFile(hexFile)
	if err != nil {
		glog.Fatalf("Input is not valid IntelHex firmware: %v", err)
	}
	glog.Infof("Validated %q: %d data bytes at %#08x", hexFile, len(seg.Data), seg.Address)

	data, err := os.ReadFile(hexFile)
	if err != nil {
		glog.Fatalf("Failed reading %q: %v", hexFile, err)
	}

	output := *outputFlag
	if len(output) == 0 {
		output = strings.TrimSuffix(hexFile, ".hex") + ".zhx"
	}

	out, err := os.Create(output)
	if err != nil {
		glog.Fatalf("Failed creating %q: %v", output, err)
	}
	defer out.Close()

	zw, err := zlib.NewWriterLevel(out, zlib.BestCompression)
	if err != nil {
		glog.Fatalf("zlib.NewWriterLevel failed: %v", err)
	}
	if _, err = zw.Write(data); err != nil {
		glog.Fatalf("Failed compressing firmware: %v", err)
	}
	if err = zw.Close(); err != nil {
		glog.Fatalf("Failed flushing output: %v", err)
	}

	glog.Infof("Packed %q (%d bytes) into %q", hexFile, len(data), output)
}

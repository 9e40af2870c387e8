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

// Resolves a firmware key against a firmware directory and dumps the
// decoded Launch RAM instruction listing.
package main

import (
	"flag"
	"fmt"

	"github.com/google/gobtfw"
	"github.com/google/gobtfw/firmwaredata"

	"github.com/golang/glog"
)

var (
	dirFlag = flag.String("dir", "firmwares", "Firmware resource directory")
	keyFlag = flag.String("key", "", "Firmware key to resolve")
	vidFlag = flag.Uint("vid", 0, "Device vendor id")
	pidFlag = flag.Uint("pid", 0, "Device product id")
)

func init() {
	flag.Parse()
}

func main() {
	defer glog.Flush()

	if len(*keyFlag) == 0 {
		glog.Fatal("Missing --key argument")
	}

	loader := gobtfw.NewLoader(&gobtfw.DirFetcher{Dir: *dirFlag}, firmwaredata.Store{}, nil)
	store := gobtfw.NewFirmwareStore(loader)

	instructions, err := store.GetFirmware(uint16(*vidFlag), uint16(*pidFlag), *keyFlag)
	if err != nil {
		glog.Fatalf("Failed loading firmware: %v", err)
	}

	for i := range instructions {
		fmt.Printf("%4d: %v\n", i, &instructions[i])
	}
	glog.Infof("Firmware %q decodes to %d instructions", *keyFlag, len(instructions))
}

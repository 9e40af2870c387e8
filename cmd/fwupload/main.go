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

// Downloads patch firmware to an attached Bluetooth controller.
// The controller is reached over USB by vendor/product id, or over a serial
// port with --uart.
package main

import (
	"flag"

	"github.com/google/gobtfw"
	"github.com/google/gobtfw/firmwaredata"

	"github.com/golang/glog"
)

var (
	dirFlag  = flag.String("dir", "firmwares", "Firmware resource directory")
	keyFlag  = flag.String("key", "", "Firmware key to resolve")
	vidFlag  = flag.Uint("vid", 0x0a5c, "Device vendor id")
	pidFlag  = flag.Uint("pid", 0, "Device product id")
	uartFlag = flag.String("uart", "", "Serial port name (use UART transport instead of USB)")
	baudFlag = flag.Int("baud", 115200, "Serial port baud rate")
)

func init() {
	flag.Parse()
}

func openDevice() (gobtfw.DeviceInterface, error) {
	if len(*uartFlag) > 0 {
		return gobtfw.OpenUartDevice(*uartFlag, *baudFlag)
	}
	return gobtfw.OpenUsbDevice(uint16(*vidFlag), uint16(*pidFlag))
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

	dev, err := openDevice()
	if err != nil {
		glog.Fatalf("Failed opening device: %v", err)
	}
	defer dev.Close()

	if err = gobtfw.DownloadFirmware(dev, instructions); err != nil {
		glog.Fatalf("Failed downloading firmware: %v", err)
	}
	glog.Info("Successfully patched device")
}

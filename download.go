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
	"fmt"
	"time"

	"github.com/golang/glog"
)

// HCI event code signalled by the controller after each command.
const evtCommandComplete = 0x0e

const maxEventBytes = 64

// DownloadFirmware sends the instruction sequence to the controller in
// order, waiting for the command-complete event after each instruction.
// Aborts on the first send or event failure. After the last instruction the
// controller resets into the patched firmware; give it time to settle.
func DownloadFirmware(dev DeviceInterface, instructions InstructionSequence) error {
	glog.Infof("Downloading %d patch instructions", len(instructions))

	buf := make([]byte, maxEventBytes)
	for i := range instructions {
		if err := dev.SendCommand(instructions[i].Encode()); err != nil {
			return fmt.Errorf("Failed sending instruction %d: %v", i, err)
		}
		n, err := dev.ReadEvent(buf)
		if err != nil {
			return fmt.Errorf("Failed reading event for instruction %d: %v", i, err)
		}
		if n == 0 || buf[0] != evtCommandComplete {
			return fmt.Errorf("Unexpected event for instruction %d: % x", i, buf[:n])
		}
	}

	time.Sleep(250 * time.Millisecond)
	glog.Info("Firmware download complete")
	return nil
}

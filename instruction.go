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

// Controller command encoding for the Broadcom patch protocol.
package gobtfw

import (
	"encoding/binary"
	"fmt"
)

// Vendor Specific Command: Launch RAM.
var launchRAMOpcode = [2]byte{0x4c, 0xfc}

// Size of the RAM address prefixed to every data payload.
const addressSize = 4

// Instruction is a single Launch RAM command: it directs the controller to
// load Payload into RAM at Address.
type Instruction struct {
	Address uint32
	Payload []byte
}

// InstructionSequence is an ordered list of commands. The order is the parse
// order of the firmware image and must be preserved when sending to the
// controller.
type InstructionSequence []Instruction

// Encode renders the instruction in the controller's command framing:
// opcode (2 bytes), length (1 byte), address (4 bytes, little-endian),
// payload. The length byte covers the address and the payload.
func (in *Instruction) Encode() []byte {
	buf := make([]byte, 0, len(launchRAMOpcode)+1+addressSize+len(in.Payload))
	buf = append(buf, launchRAMOpcode[0], launchRAMOpcode[1])
	buf = append(buf, byte(len(in.Payload)+addressSize))
	buf = binary.LittleEndian.AppendUint32(buf, in.Address)
	buf = append(buf, in.Payload...)
	return buf
}

func (in *Instruction) String() string {
	return fmt.Sprintf("LaunchRAM{addr: %#08x, dlen: %d}", in.Address, len(in.Payload))
}

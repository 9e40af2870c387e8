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
	"testing"

	"github.com/google/gobtfw"
)

var scenarioPayload = []byte{
	0x21, 0x46, 0x01, 0x36, 0x01, 0x21, 0x47, 0x01,
	0x36, 0x00, 0x7e, 0xfe, 0x09, 0xd2, 0x19, 0x01,
}

func TestParseSingleDataRecord(t *testing.T) {
	input := []byte(":10010000214601360121470136007EFE09D2190140\n:00000001FF\n")
	instructions, err := gobtfw.ParseFirmware(input)
	if err != nil {
		t.Fatalf("ParseFirmware failed: %v", err)
	}
	if len(instructions) != 1 {
		t.Fatalf("Expected 1 instruction, got %d", len(instructions))
	}
	if instructions[0].Address != 0x0100 {
		t.Errorf("Address = %#x, want 0x0100", instructions[0].Address)
	}
	if !bytes.Equal(instructions[0].Payload, scenarioPayload) {
		t.Errorf("Unexpected payload % x", instructions[0].Payload)
	}
}

func TestParseIgnoresBytesAfterEOFRecord(t *testing.T) {
	input := []byte(":00000001FF\n:garbage after the end record")
	instructions, err := gobtfw.ParseFirmware(input)
	if err != nil {
		t.Fatalf("ParseFirmware failed: %v", err)
	}
	if len(instructions) != 0 {
		t.Errorf("Expected empty sequence, got %d instructions", len(instructions))
	}
}

func TestParseCorruptChecksum(t *testing.T) {
	// Trailing checksum byte of the data record flipped from 0x40 to 0x41.
	input := []byte(":10010000214601360121470136007EFE09D2190141\n:00000001FF\n")
	_, err := gobtfw.ParseFirmware(input)
	var cerr *gobtfw.ChecksumError
	if !errors.As(err, &cerr) {
		t.Fatalf("ParseFirmware = %v, want ChecksumError", err)
	}
	if cerr.Expected != 0x40 || cerr.Actual != 0x41 {
		t.Errorf("ChecksumError = %+v, want expected 0x40 actual 0x41", cerr)
	}
}

// Flipping any single payload bit must trip the checksum.
func TestParseChecksumCoversEveryPayloadBit(t *testing.T) {
	valid := ":10010000214601360121470136007EFE09D2190140\n:00000001FF\n"
	// Payload hex characters occupy offsets 9 through 40 of the record.
	for i := 9; i < 41; i++ {
		input := []byte(valid)
		// Flip to a different hex digit to keep the line well-formed.
		if input[i] == '0' {
			input[i] = '1'
		} else {
			input[i] = '0'
		}
		_, err := gobtfw.ParseFirmware(input)
		var cerr *gobtfw.ChecksumError
		if !errors.As(err, &cerr) {
			t.Errorf("Corrupting offset %d: got %v, want ChecksumError", i, err)
		}
	}
}

func TestParseRecordTypes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		addr    uint32
		errKind string // "", "format", "checksum"
	}{
		{
			name:  "extended linear address shifts high half",
			input: ":02000004FFFFFC\n:10010000214601360121470136007EFE09D2190140\n:00000001FF\n",
			addr:  0xffff0100,
		},
		{
			name:  "extended segment address multiplies by 16",
			input: ":020000021200EA\n:10010000214601360121470136007EFE09D2190140\n:00000001FF\n",
			// The data record's 16-bit address replaces the low half of the
			// segment base.
			addr: 0x00010100,
		},
		{
			name:    "start segment address is unsupported",
			input:   ":0400000312345678E5\n:00000001FF\n",
			errKind: "format",
		},
		{
			name:    "start linear address is unsupported",
			input:   ":04000005000000FAFD\n:00000001FF\n",
			errKind: "format",
		},
		{
			name:    "unknown record type",
			input:   ":00000006FA\n:00000001FF\n",
			errKind: "format",
		},
		{
			name:    "extended segment address without payload",
			input:   ":00000002FE\n:00000001FF\n",
			errKind: "format",
		},
		{
			name:    "extended linear address with short payload",
			input:   ":01000004FFFC\n:00000001FF\n",
			errKind: "format",
		},
		{
			name:    "missing end-of-file record",
			input:   ":10010000214601360121470136007EFE09D2190140\n",
			errKind: "format",
		},
		{
			name:    "truncated mid record",
			input:   ":10010000214601",
			errKind: "format",
		},
		{
			name:    "odd number of hex digits",
			input:   ":10010000214601360121470136007EFE09D21901400\n:00000001FF\n",
			errKind: "format",
		},
		{
			name:    "missing record prefix",
			input:   "10010000214601360121470136007EFE09D2190140\n",
			errKind: "format",
		},
		{
			name:    "empty input",
			input:   "",
			errKind: "format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instructions, err := gobtfw.ParseFirmware([]byte(tt.input))
			switch tt.errKind {
			case "":
				if err != nil {
					t.Fatalf("ParseFirmware failed: %v", err)
				}
				if len(instructions) != 1 {
					t.Fatalf("Expected 1 instruction, got %d", len(instructions))
				}
				if instructions[0].Address != tt.addr {
					t.Errorf("Address = %#x, want %#x", instructions[0].Address, tt.addr)
				}
			case "format":
				var ferr *gobtfw.FormatError
				if !errors.As(err, &ferr) {
					t.Errorf("ParseFirmware = %v, want FormatError", err)
				}
			case "checksum":
				var cerr *gobtfw.ChecksumError
				if !errors.As(err, &cerr) {
					t.Errorf("ParseFirmware = %v, want ChecksumError", err)
				}
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := []byte(":02000004FFFFFC\n:10010000214601360121470136007EFE09D2190140\n:00000001FF\n")
	first, err := gobtfw.ParseFirmware(input)
	if err != nil {
		t.Fatalf("ParseFirmware failed: %v", err)
	}
	second, err := gobtfw.ParseFirmware(input)
	if err != nil {
		t.Fatalf("ParseFirmware failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("Sequence lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Address != second[i].Address ||
			!bytes.Equal(first[i].Payload, second[i].Payload) {
			t.Errorf("Instruction %d differs between parses", i)
		}
	}
}

func TestInstructionEncoding(t *testing.T) {
	in := gobtfw.Instruction{Address: 0x00210568, Payload: []byte{0xaa, 0xbb, 0xcc}}
	want := []byte{
		0x4c, 0xfc, // Launch RAM opcode
		0x07,                   // length: payload + 4 address bytes
		0x68, 0x05, 0x21, 0x00, // address, little-endian
		0xaa, 0xbb, 0xcc, // payload
	}
	if got := in.Encode(); !bytes.Equal(got, want) {
		t.Errorf("Encode() = % x, want % x", got, want)
	}
}

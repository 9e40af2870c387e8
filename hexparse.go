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

// Intel HEX firmware parsing.
// Decodes colon-prefixed records into Launch RAM instructions. Only the
// I32HEX subset is supported: data, end-of-file and the two address
// extension record types.
package gobtfw

import (
	"fmt"
)

const (
	hexLinePrefix = ':'
	hexHeaderSize = 4

	// Largest possible record: header, 255 payload bytes, checksum.
	maxRecordBytes = 0x110
)

// Record types.
const (
	recTypeData = iota // Data
	recTypeEOF         // End of File
	recTypeESA         // Extended Segment Address
	recTypeSSA         // Start Segment Address
	recTypeELA         // Extended Linear Address
	recTypeSLA         // Start Linear Address
)

func validHexChar(c byte) bool {
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || (c >= '0' && c <= '9')
}

func hexNibble(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 0x0a
	case c >= 'A':
		return c - 'A' + 0x0a
	default:
		return c - '0'
	}
}

// Two's complement checksum over data.
func checkSum(data []byte) byte {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return byte(-sum)
}

// ParseFirmware decodes an Intel HEX firmware image into the instruction
// sequence to send to the controller. Each data record becomes one Launch
// RAM instruction carrying the record payload at the running 32-bit address.
// The parse only succeeds through an end-of-file record; anything after it
// is ignored.
func ParseFirmware(data []byte) (InstructionSequence, error) {
	instructions := InstructionSequence{}
	var address uint32
	pos := 0

	if len(data) == 0 || data[0] != hexLinePrefix {
		return nil, &FormatError{0, "missing record prefix"}
	}

	for pos < len(data) && data[pos] == hexLinePrefix {
		recStart := pos
		pos++

		// Read pairs of hex digits into the binary record buffer until a
		// non-hex byte terminates the line.
		var record [maxRecordBytes]byte
		n := 0
		for pos < len(data) && validHexChar(data[pos]) {
			if pos+1 >= len(data) || !validHexChar(data[pos+1]) {
				return nil, &FormatError{recStart, "truncated hex pair"}
			}
			if n >= maxRecordBytes {
				return nil, &FormatError{recStart, "record too long"}
			}
			record[n] = hexNibble(data[pos])<<4 | hexNibble(data[pos+1])
			pos += 2
			n++
		}

		if n < hexHeaderSize+1 {
			return nil, &FormatError{recStart, "record too short"}
		}

		length := int(record[0])
		addr := uint16(record[1])<<8 | uint16(record[2])
		recType := record[3]

		if n < hexHeaderSize+length+1 {
			return nil, &FormatError{recStart, "record payload truncated"}
		}

		calcChecksum := checkSum(record[:hexHeaderSize+length])
		checksum := record[hexHeaderSize+length]
		if checksum != calcChecksum {
			return nil, &ChecksumError{recStart, calcChecksum, checksum}
		}

		switch recType {
		case recTypeData:
			address = address&0xffff0000 | uint32(addr)
			if length > 0xff-addressSize {
				return nil, &FormatError{recStart, "record payload too long for command framing"}
			}
			payload := make([]byte, length)
			copy(payload, record[hexHeaderSize:hexHeaderSize+length])
			instructions = append(instructions, Instruction{address, payload})
		case recTypeEOF:
			return instructions, nil
		case recTypeESA:
			if length < 2 {
				return nil, &FormatError{recStart, "address record payload too short"}
			}
			// Segment address multiplied by 16.
			address = uint32(record[4])<<8 | uint32(record[5])
			address <<= 4
		case recTypeELA:
			if length < 2 {
				return nil, &FormatError{recStart, "address record payload too short"}
			}
			// New higher 16 bits of the running address.
			address = uint32(record[4])<<24 | uint32(record[5])<<16
		case recTypeSSA, recTypeSLA:
			return nil, &FormatError{recStart,
				fmt.Sprintf("unsupported start address record type 0x%02x", recType)}
		default:
			return nil, &FormatError{recStart,
				fmt.Sprintf("unknown record type 0x%02x", recType)}
		}

		// Skip separators (newlines, carriage returns) up to the next record.
		for pos < len(data) && !validHexChar(data[pos]) && data[pos] != hexLinePrefix {
			pos++
		}
	}

	return nil, &FormatError{pos, "missing end-of-file record"}
}

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

// UART (H4) transport for serial attached controllers. UART parts take the
// same patch instruction stream as USB ones, framed with the H4 packet
// indicator byte.
package gobtfw

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/golang/glog"
	"go.bug.st/serial"
)

// H4 packet indicators.
const (
	h4CommandPacket = 0x01
	h4EventPacket   = 0x04
)

type UartDevice struct {
	port serial.Port
}

func OpenUartDevice(portName string, baudRate int) (*UartDevice, error) {
	port, err := serial.Open(portName, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("Opening serial port %q: %v", portName, err)
	}
	return &UartDevice{port}, nil
}

func (d *UartDevice) Close() error {
	glog.V(1).Info("Closing UART device")
	return d.port.Close()
}

func (d *UartDevice) SendCommand(cmd []byte) error {
	pkt := make([]byte, 0, len(cmd)+1)
	pkt = append(pkt, h4CommandPacket)
	pkt = append(pkt, cmd...)
	for len(pkt) > 0 {
		n, err := d.port.Write(pkt)
		if err != nil {
			return fmt.Errorf("port.Write failed %v", err)
		}
		pkt = pkt[n:]
	}
	glog.V(2).Infof("[uart-hci OUT]: wrote %d bytes. data:\n%s", len(cmd)+1, hex.Dump(cmd))
	return nil
}

// ReadEvent reads one complete HCI event packet: the H4 indicator byte is
// stripped, then the two byte event header and exactly the parameter length
// it declares.
func (d *UartDevice) ReadEvent(buf []byte) (int, error) {
	ind := make([]byte, 1)
	if _, err := io.ReadFull(d.port, ind); err != nil {
		return 0, fmt.Errorf("Indicator read failed %v", err)
	}
	if ind[0] != h4EventPacket {
		return 0, fmt.Errorf("Unexpected H4 packet indicator 0x%02x", ind[0])
	}
	if len(buf) < 2 {
		return 0, fmt.Errorf("Event buffer too small for header")
	}
	if _, err := io.ReadFull(d.port, buf[:2]); err != nil {
		return 0, fmt.Errorf("Event header read failed %v", err)
	}
	plen := int(buf[1])
	if len(buf) < 2+plen {
		return 0, fmt.Errorf("Event buffer too small for %d parameter bytes", plen)
	}
	if _, err := io.ReadFull(d.port, buf[2:2+plen]); err != nil {
		return 0, fmt.Errorf("Event parameters read failed %v", err)
	}
	n := 2 + plen
	glog.V(2).Infof("[uart-hci IN]: read %d bytes. data:\n%s", n, hex.Dump(buf[:n]))
	return n, nil
}

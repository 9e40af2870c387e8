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

// Low-level interface for a USB attached Bluetooth controller.
// Commands go out over the control endpoint, events come back on the
// interrupt endpoint, per the USB HCI transport.
package gobtfw

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/google/gousb"
)

const (
	// HCI command over USB: class request to interface 0.
	hciCommandRequestType uint8 = gousb.ControlOut | gousb.ControlClass | gousb.ControlInterface

	// Interrupt IN endpoint carrying HCI events.
	hciEventEp = 1
)

//go:generate mockgen -destination=mocks/device.go -package=mocks github.com/google/gobtfw DeviceInterface
type DeviceInterface interface {
	io.Closer
	// Sends one complete HCI command packet.
	SendCommand(cmd []byte) error
	// Reads one HCI event packet into buf.
	ReadEvent(buf []byte) (int, error)
}

// Encapsulates the controller's USB resources.
type UsbDevice struct {
	ctx      *gousb.Context
	dev      *gousb.Device
	intf     *gousb.Interface
	intfDone func()
	// Interrupt event endpoint.
	epIn *gousb.InEndpoint
}

func OpenUsbDevice(vendorID, productID uint16) (*UsbDevice, error) {
	d := &UsbDevice{}
	d.ctx = gousb.NewContext()

	var err error
	d.dev, err = d.ctx.OpenDeviceWithVIDPID(gousb.ID(vendorID), gousb.ID(productID))
	if d.dev == nil && err == nil {
		d.Close()
		return nil, fmt.Errorf("Device %04x:%04x not found", vendorID, productID)
	}

	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Opening device %04x:%04x: %v", vendorID, productID, err)
	}

	// The default interface is always #0 alt #0 in the currently active
	// config.
	d.intf, d.intfDone, err = d.dev.DefaultInterface()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Claiming default interface: %v", err)
	}

	d.epIn, err = d.intf.InEndpoint(hciEventEp)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Opening event endpoint: %v", err)
	}

	return d, nil
}

func (d *UsbDevice) Close() error {
	glog.V(1).Info("Closing USB device")
	if d.intfDone != nil {
		d.intfDone()
		d.intfDone = nil
	}
	if d.intf != nil {
		d.intf.Close()
		d.intf = nil
	}
	if d.dev != nil {
		d.dev.Close()
		d.dev = nil
	}
	if d.ctx != nil {
		d.ctx.Close()
		d.ctx = nil
	}
	return nil
}

func (d *UsbDevice) SendCommand(cmd []byte) error {
	n, err := d.dev.Control(hciCommandRequestType, 0, 0, 0, cmd)
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != len(cmd) {
		return fmt.Errorf("Failed to write entire command %v vs %v", n, len(cmd))
	}
	glog.V(2).Infof("[usb-hci OUT]: wrote %d bytes. data:\n%s", n, hex.Dump(cmd))
	return nil
}

func (d *UsbDevice) ReadEvent(buf []byte) (int, error) {
	n, err := d.epIn.Read(buf)
	if err != nil {
		return n, fmt.Errorf("Event read failed %v", err)
	}
	glog.V(2).Infof("[usb-hci IN]: read %d bytes. data:\n%s", n, hex.Dump(buf[:n]))
	return n, nil
}

package rig

import (
	"strings"

	"github.com/boybook/hamlib-go/pkg/driver"
)

// DefaultSerialPath is the device path used when no address is given.
const DefaultSerialPath = "/dev/ttyUSB0"

// resolveAddress classifies an address string and picks the effective model.
//
// A string containing a colon with at least one character after it is a
// host:port address of a network control daemon: the connection is Network
// and the model is forced to driver.ModelNetRigctl no matter what was
// requested. Everything else, including a trailing bare colon, is a local
// serial device path and keeps the requested model. Pure string
// classification; no I/O happens here.
func resolveAddress(model driver.Model, address string) (driver.PortType, driver.Model, string) {
	if address == "" {
		return driver.PortSerial, model, DefaultSerialPath
	}
	if idx := strings.Index(address, ":"); idx >= 0 && idx+1 < len(address) {
		return driver.PortNetwork, driver.ModelNetRigctl, address
	}
	return driver.PortSerial, model, address
}

package storage

import (
	"blinkytree-go/errcode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/at24cx"
)

// AT24 stores bytes in an external 24Cxx EEPROM.
type AT24 struct {
	dev at24cx.Device
}

// NewAT24 binds a 24Cxx at addr on bus. size is the device capacity in bytes.
func NewAT24(bus drivers.I2C, addr uint16, size uint16) *AT24 {
	d := at24cx.New(bus)
	d.Address = addr
	d.Configure(at24cx.Config{PageSize: 32, StartRAMAddress: 0, EndRAMAddress: size})
	return &AT24{dev: d}
}

func (a *AT24) ReadByte(addr uint16) (byte, error) {
	v, err := a.dev.ReadByte(addr)
	if err != nil {
		return 0, errcode.Wrap(errcode.StorageIO, "at24.read", err)
	}
	return v, nil
}

func (a *AT24) WriteByte(addr uint16, v byte) error {
	return errcode.Wrap(errcode.StorageIO, "at24.write", a.dev.WriteByte(addr, v))
}

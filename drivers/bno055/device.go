// Package bno055 provides a driver for the Bosch BNO055 9-DoF absolute
// orientation sensor with on-chip sensor fusion.
//
//	d := bno055.New(machine.I2C0)
//	err := d.Configure()         // identity check, reset, NDOF mode
//	h, r, p, err := d.Euler()    // fused orientation in degrees
//
// Fusion runs on the chip; the driver only decodes the fixed-point register
// blocks and sequences the operating-mode protocol. All operations block for
// the datasheet settle intervals (up to 700 ms during reset).
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.
//
// The Device is not safe for concurrent use: multi-step sequences such as
// the calibration block access force CONFIG mode and restore it afterwards,
// and must not be interleaved with other calls.
package bno055

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// ErrBadChipID means the identity register did not read back 0xA0. Nothing
// past the identity probe is touched when this is returned.
var ErrBadChipID = errors.New("bno055: bad chip id")

// Settle intervals from datasheet table 3.6, plus the POR/reset time.
const (
	settleConfig = 20 * time.Millisecond
	settleMode   = 10 * time.Millisecond
	settleReset  = 700 * time.Millisecond
)

// Config controls initialisation. All fields are optional.
type Config struct {
	// Address defaults to 0x28 if zero.
	Address uint16
	// Mode is the operating mode selected at the end of Configure.
	// Defaults to ModeNDOF (full absolute fusion).
	Mode OperatingMode
	// ExternalCrystal switches the clock source to the external 32 kHz
	// crystal after the mode is set. Most breakout boards have one.
	ExternalCrystal bool
}

// Device wraps an I2C connection to a BNO055.
type Device struct {
	i2c  drivers.I2C
	addr uint16

	// Fixed buffers to avoid per-call heap allocations. Not shared across
	// goroutines; r is sized for the widest measurement block (quaternion).
	w [2]byte
	r [8]byte
}

// New creates a BNO055 connection. The I2C bus must already be configured.
// This function only creates the Device object; it does not touch the device.
func New(i2c drivers.I2C) *Device {
	return &Device{
		i2c:  i2c,
		addr: Address,
	}
}

// Configure verifies the chip identity and runs the power-on sequence:
// reset, normal power mode, register page 0, clear SYS_TRIGGER, then the
// configured operating mode. It fails fast with ErrBadChipID before any
// other register is written if the identity probe mismatches.
func (d *Device) Configure(cfgs ...Config) error {
	cfg := Config{}
	if len(cfgs) > 0 {
		cfg = cfgs[0]
	}
	if cfg.Address != 0 {
		d.addr = cfg.Address
	}
	// CONFIG is not a useful end state; zero-value Mode means the default.
	if cfg.Mode == ModeConfig {
		cfg.Mode = ModeNDOF
	}

	id, err := d.readRegister(regChipID)
	if err != nil {
		return err
	}
	if id != ChipID {
		return ErrBadChipID
	}

	if err := d.reset(); err != nil {
		return err
	}
	if err := d.writeRegister(regPower, byte(PowerNormal)); err != nil {
		return err
	}
	if err := d.writeRegister(regPage, 0x00); err != nil {
		return err
	}
	if err := d.writeRegister(regTrigger, 0x00); err != nil {
		return err
	}
	time.Sleep(settleMode)
	if err := d.SetMode(cfg.Mode); err != nil {
		return err
	}
	time.Sleep(settleMode)

	if cfg.ExternalCrystal {
		return d.UseExternalCrystal(true)
	}
	return nil
}

// Connected probes the identity register and reports whether a BNO055
// answered. No side effects.
func (d *Device) Connected() bool {
	id, err := d.readRegister(regChipID)
	return err == nil && id == ChipID
}

// reset triggers a hardware reset and waits for the chip to reboot.
func (d *Device) reset() error {
	if err := d.SetMode(ModeConfig); err != nil {
		return err
	}
	// The chip drops off the bus while rebooting, so this write is
	// expected to NACK.
	_ = d.writeRegister(regTrigger, trgReset)
	time.Sleep(settleReset)
	return nil
}

// SetPowerMode writes the power mode register. Normal is required for
// measurements; suspend halts all sensors until the next mode change.
func (d *Device) SetPowerMode(pm PowerMode) error {
	return d.writeRegister(regPower, byte(pm))
}

// Temperature returns the chip temperature in °C (1 °C resolution).
func (d *Device) Temperature() (int32, error) {
	raw, err := d.readRegister(regTemp)
	if err != nil {
		return 0, err
	}
	return int32(int8(raw)), nil
}

// ExternalCrystal reports whether the external 32 kHz crystal is the active
// clock source. The read requires CONFIG mode; the prior operating mode is
// restored before returning.
func (d *Device) ExternalCrystal() (bool, error) {
	var on bool
	err := d.withConfigMode(func() error {
		if err := d.writeRegister(regPage, 0x00); err != nil {
			return err
		}
		v, err := d.readRegister(regTrigger)
		if err != nil {
			return err
		}
		on = v&trgExtCrystal != 0
		return nil
	})
	return on, err
}

// UseExternalCrystal switches the clock source. Requires CONFIG mode; the
// prior operating mode is restored before returning.
func (d *Device) UseExternalCrystal(on bool) error {
	err := d.withConfigMode(func() error {
		if err := d.writeRegister(regPage, 0x00); err != nil {
			return err
		}
		var v byte
		if on {
			v = trgExtCrystal
		}
		return d.writeRegister(regTrigger, v)
	})
	if err != nil {
		return err
	}
	time.Sleep(settleMode)
	return nil
}

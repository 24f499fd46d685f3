package bno055

import "time"

// Mode reads the currently active operating mode. No side effects.
func (d *Device) Mode() (OperatingMode, error) {
	v, err := d.readRegister(regMode)
	return OperatingMode(v), err
}

// SetMode switches the operating mode.
//
// The chip only accepts mode writes while not mid-transition, so every
// switch goes through CONFIG first (empirically necessary even when the
// device already reports CONFIG), with the settle intervals from datasheet
// table 3.6.
func (d *Device) SetMode(mode OperatingMode) error {
	if err := d.writeRegister(regMode, byte(ModeConfig)); err != nil {
		return err
	}
	time.Sleep(settleConfig)
	if mode == ModeConfig {
		return nil
	}
	if err := d.writeRegister(regMode, byte(mode)); err != nil {
		return err
	}
	time.Sleep(settleMode)
	return nil
}

// withConfigMode saves the active mode, forces CONFIG, runs fn, and restores
// the saved mode on every exit path. Calibration block access and clock
// source switches are only legal in CONFIG mode.
func (d *Device) withConfigMode(fn func() error) error {
	prev, err := d.Mode()
	if err != nil {
		return err
	}
	if err := d.SetMode(ModeConfig); err != nil {
		return err
	}
	ferr := fn()
	if err := d.SetMode(prev); err != nil && ferr == nil {
		return err
	}
	return ferr
}

package bno055

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

// CalibrationSize is the length of the offset/radius profile block at 0x55.
const CalibrationSize = 22

var (
	// ErrNotCalibrated means the profile was requested before all four
	// subsystems reported full calibration. Retry after moving the sensor
	// through the calibration figures.
	ErrNotCalibrated   = errors.New("bno055: not calibrated")
	ErrCalibrationSize = errors.New("bno055: calibration profile must be 22 bytes")
	ErrCalibrationFile = errors.New("bno055: malformed calibration file")
)

// CalibrationStatus returns the per-subsystem calibration levels, each 0
// (uncalibrated) to 3 (fully calibrated). Re-read from the chip on every
// call, never cached.
func (d *Device) CalibrationStatus() (sys, gyro, accel, mag byte, err error) {
	v, err := d.readRegister(regCalibStat)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return v >> 6 & 0x03, v >> 4 & 0x03, v >> 2 & 0x03, v & 0x03, nil
}

// Calibrated reports whether all four subsystems are fully calibrated.
func (d *Device) Calibrated() (bool, error) {
	sys, gyro, accel, mag, err := d.CalibrationStatus()
	if err != nil {
		return false, err
	}
	return sys == 3 && gyro == 3 && accel == 3 && mag == 3, nil
}

// Calibration reads the 22-byte calibration profile. It fails with
// ErrNotCalibrated (touching no other register) unless the device reports
// full calibration. The block is only readable in CONFIG mode, so fusion
// pauses briefly; the prior operating mode is restored before returning.
//
// Profiles are trim values for one physical sensor and are not portable
// across units.
func (d *Device) Calibration() ([]byte, error) {
	ok, err := d.Calibrated()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotCalibrated
	}
	data := make([]byte, CalibrationSize)
	err = d.withConfigMode(func() error {
		return d.readBytes(regCalibData, data)
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SetCalibration writes a previously captured 22-byte profile back to the
// chip. Wrong-sized data is rejected with ErrCalibrationSize before any
// register write. The prior operating mode is restored before returning.
//
// Whether a stored profile stays valid across axis remap changes is
// undocumented; callers changing the remap should recalibrate.
func (d *Device) SetCalibration(data []byte) error {
	if len(data) != CalibrationSize {
		return ErrCalibrationSize
	}
	return d.withConfigMode(func() error {
		return d.writeBytes(regCalibData, data)
	})
}

// SaveCalibration captures the current profile and writes it to w as 22
// newline-delimited decimal byte values. Durability of the destination is
// the caller's concern.
func (d *Device) SaveCalibration(w io.Writer) error {
	data, err := d.Calibration()
	if err != nil {
		return err
	}
	for _, b := range data {
		if _, err := io.WriteString(w, strconv.Itoa(int(b))+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// LoadCalibration parses a profile from r and applies it to the chip. A
// malformed stream is rejected before any register write.
func (d *Device) LoadCalibration(r io.Reader) error {
	data, err := ParseCalibration(r)
	if err != nil {
		return err
	}
	return d.SetCalibration(data)
}

// ParseCalibration reads the SaveCalibration text encoding: exactly 22
// lines, one decimal byte value per line. Anything else fails with
// ErrCalibrationFile.
func ParseCalibration(r io.Reader) ([]byte, error) {
	data := make([]byte, 0, CalibrationSize)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if len(data) == CalibrationSize {
			return nil, ErrCalibrationFile
		}
		v, err := strconv.ParseUint(sc.Text(), 10, 8)
		if err != nil {
			return nil, ErrCalibrationFile
		}
		data = append(data, byte(v))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(data) != CalibrationSize {
		return nil, ErrCalibrationFile
	}
	return data, nil
}

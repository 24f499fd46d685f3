// Package bno055 provides constants for register addresses and operating
// modes used by the Bosch BNO055 absolute orientation sensor.
package bno055

const (
	// 7-bit I2C address (COM3 pin low). 0x29 with COM3 high.
	Address = 0x28

	// CHIP_ID register value for a healthy BNO055.
	ChipID = 0xA0

	// --- Register sub-addresses (page 0) ---

	// Identity / setup
	regChipID  = 0x00 // R
	regPage    = 0x07 // R/W, register page select
	regMode    = 0x3D // R/W, operating mode
	regPower   = 0x3E // R/W, power mode
	regTrigger = 0x3F // R/W, SYS_TRIGGER: reset, self-test, clock source

	// Fused / raw measurement blocks (little-endian int16 fields)
	regAccel    = 0x08 // R, 3 fields, 1 LSB = 1/100 m/s²
	regMag      = 0x0E // R, 3 fields, 1 LSB = 1/16 µT
	regGyro     = 0x14 // R, 3 fields, 1 LSB = 1/16 °/s
	regEuler    = 0x1A // R, 3 fields, 1 LSB = 1/16 °
	regQuat     = 0x20 // R, 4 fields, 1 LSB = 1/16384
	regLinAccel = 0x28 // R, 3 fields, 1 LSB = 1/100 m/s²
	regGravity  = 0x2E // R, 3 fields, 1 LSB = 1/100 m/s²
	regTemp     = 0x34 // R, int8 °C

	// Calibration
	regCalibStat = 0x35 // R, 2-bit status per subsystem
	regCalibData = 0x55 // R/W, 22-byte offset/radius profile

	// SYS_TRIGGER bits
	trgReset      = 0x20
	trgExtCrystal = 0x80
)

// OperatingMode selects which sensors run and whether the fused outputs are
// absolute (magnetometer-referenced) or relative.
type OperatingMode byte

const (
	ModeConfig     OperatingMode = 0x00
	ModeAccOnly    OperatingMode = 0x01
	ModeMagOnly    OperatingMode = 0x02
	ModeGyroOnly   OperatingMode = 0x03
	ModeAccMag     OperatingMode = 0x04
	ModeAccGyro    OperatingMode = 0x05
	ModeMagGyro    OperatingMode = 0x06
	ModeAMG        OperatingMode = 0x07
	ModeIMUPlus    OperatingMode = 0x08
	ModeCompass    OperatingMode = 0x09
	ModeM4G        OperatingMode = 0x0A
	ModeNDOFFMCOff OperatingMode = 0x0B
	ModeNDOF       OperatingMode = 0x0C
)

// PowerMode selects the chip power state.
type PowerMode byte

const (
	PowerNormal  PowerMode = 0x00
	PowerLow     PowerMode = 0x01
	PowerSuspend PowerMode = 0x02
)

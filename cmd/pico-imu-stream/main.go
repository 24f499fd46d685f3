//go:build pico

// Command pico-imu-stream: BNO055 bring-up for RP2040/Pico, streaming fused
// orientation to the USB console and UART0.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico -tags pico ./cmd/pico-imu-stream
//
// Wiring assumptions:
// - I2C0 @ 400 kHz on Pico defaults: SDA=GP4, SCL=GP5.
// - BNO055 on I2C address 0x28 (COM3 strapped low).
// - UART0 TX=GP0, RX=GP1 @ 115200.
package main

import (
	"fmt"
	"time"

	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"imucode-go/drivers/bno055"
)

const streamPeriod = 100 * time.Millisecond

// out mirrors every line to the console and UART0.
type out struct {
	u *uartx.UART
}

func (o *out) printf(format string, a ...any) {
	line := fmt.Sprintf(format, a...)
	print(line)
	if o.u != nil {
		_, _ = o.u.Write([]byte(line))
	}
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[imu] boot …")

	_ = machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400_000,
	})

	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	o := &out{u: u}

	imu := bno055.New(machine.I2C0)
	if !imu.Connected() {
		o.printf("[imu] FAIL: no BNO055 on i2c0 @ %#x\n", bno055.Address)
		return
	}
	if err := imu.Configure(bno055.Config{ExternalCrystal: true}); err != nil {
		o.printf("[imu] FAIL: configure: %v\n", err)
		return
	}
	o.printf("[imu] NDOF mode up, streaming every %v\n", streamPeriod)

	calibrated := false
	for {
		s := imu.Snapshot()
		o.printf("euler h=%.1f r=%.1f p=%.1f quat w=%.4f temp=%dC calib=%d%d%d%d\n",
			s.Heading, s.Roll, s.Pitch, s.QuatW, s.TempC,
			s.Sys, s.Gyro, s.Accel, s.Mag)

		if !calibrated && s.Sys == 3 && s.Gyro == 3 && s.Accel == 3 && s.Mag == 3 {
			calibrated = true
			// Dump the profile once so it can be pasted into a file and
			// replayed with LoadCalibration after the next power cycle.
			if data, err := imu.Calibration(); err == nil {
				o.printf("[imu] calibration profile:\n")
				for _, b := range data {
					o.printf("%d\n", b)
				}
			}
		}
		time.Sleep(streamPeriod)
	}
}

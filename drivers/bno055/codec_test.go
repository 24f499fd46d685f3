package bno055

import (
	"math"
	"testing"
)

func setRaw3(f *fakeI2C, reg byte, x, y, z int16) {
	for i, v := range []int16{x, y, z} {
		f.regs[int(reg)+2*i] = byte(v)
		f.regs[int(reg)+2*i+1] = byte(uint16(v) >> 8)
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestScaledDecode(t *testing.T) {
	cases := []struct {
		name string
		reg  byte
		raw  int16
		want float64
		read func(d *Device) (float64, float64, float64, error)
	}{
		{"acceleration", regAccel, 100, 1.0, (*Device).Acceleration},
		{"magnetic", regMag, 16, 1.0, (*Device).Magnetic},
		{"gyro", regGyro, -32, -2.0, (*Device).Gyro},
		{"euler", regEuler, 16, 1.0, (*Device).Euler},
		{"linear", regLinAccel, -150, -1.5, (*Device).LinearAcceleration},
		{"gravity", regGravity, 981, 9.81, (*Device).Gravity},
	}
	for _, c := range cases {
		f := newFakeBNO055()
		setRaw3(f, c.reg, c.raw, 0, c.raw)
		d := New(f)
		x, y, z, err := c.read(d)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if !near(x, c.want) || !near(y, 0) || !near(z, c.want) {
			t.Fatalf("%s: got (%v, %v, %v), want (%v, 0, %v)", c.name, x, y, z, c.want, c.want)
		}
	}
}

func TestScaledDecodeLinearity(t *testing.T) {
	f := newFakeBNO055()
	d := New(f)

	setRaw3(f, regAccel, 123, -456, 789)
	x1, y1, z1, err := d.Acceleration()
	if err != nil {
		t.Fatalf("Acceleration: %v", err)
	}
	setRaw3(f, regAccel, 246, -912, 1578)
	x2, y2, z2, err := d.Acceleration()
	if err != nil {
		t.Fatalf("Acceleration: %v", err)
	}
	if !near(x2, 2*x1) || !near(y2, 2*y1) || !near(z2, 2*z1) {
		t.Fatalf("doubled raw must double output: (%v,%v,%v) vs (%v,%v,%v)",
			x1, y1, z1, x2, y2, z2)
	}
}

func TestQuaternionScale(t *testing.T) {
	f := newFakeBNO055()
	// w = 1.0 (1<<14), x = -0.5, y = 0, z = 0.25
	for i, v := range []int16{16384, -8192, 0, 4096} {
		f.regs[int(regQuat)+2*i] = byte(v)
		f.regs[int(regQuat)+2*i+1] = byte(uint16(v) >> 8)
	}
	d := New(f)
	w, x, y, z, err := d.Quaternion()
	if err != nil {
		t.Fatalf("Quaternion: %v", err)
	}
	if !near(w, 1.0) || !near(x, -0.5) || !near(y, 0) || !near(z, 0.25) {
		t.Fatalf("Quaternion = (%v, %v, %v, %v), want (1, -0.5, 0, 0.25)", w, x, y, z)
	}
}

func TestSnapshotCollects(t *testing.T) {
	f := newFakeBNO055()
	setRaw3(f, regEuler, 16*90, 0, -16*45) // heading 90°, pitch -45°
	f.regs[regTemp] = 26
	f.regs[regCalibStat] = 0xFF
	d := New(f)

	s := d.Snapshot()
	if !near(s.Heading, 90) || !near(s.Pitch, -45) {
		t.Fatalf("Snapshot euler = (%v, %v, %v)", s.Heading, s.Roll, s.Pitch)
	}
	if s.TempC != 26 {
		t.Fatalf("Snapshot temp = %d, want 26", s.TempC)
	}
	if s.Sys != 3 || s.Mag != 3 {
		t.Fatalf("Snapshot calib = (%d,%d,%d,%d), want all 3", s.Sys, s.Gyro, s.Accel, s.Mag)
	}
}

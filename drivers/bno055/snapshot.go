package bno055

// Snapshot collects the fused outputs and calibration state in one call.
// Zero values remain where individual reads fail.
type Snapshot struct {
	Heading, Roll, Pitch       float64
	QuatW, QuatX, QuatY, QuatZ float64
	LinX, LinY, LinZ           float64
	GravX, GravY, GravZ        float64
	TempC                      int32
	Sys, Gyro, Accel, Mag      byte
}

func (d *Device) Snapshot() Snapshot {
	var s Snapshot
	d.SnapshotInto(&s)
	return s
}

func (d *Device) SnapshotInto(out *Snapshot) {
	var s Snapshot
	if h, r, p, e := d.Euler(); e == nil {
		s.Heading, s.Roll, s.Pitch = h, r, p
	}
	if w, x, y, z, e := d.Quaternion(); e == nil {
		s.QuatW, s.QuatX, s.QuatY, s.QuatZ = w, x, y, z
	}
	if x, y, z, e := d.LinearAcceleration(); e == nil {
		s.LinX, s.LinY, s.LinZ = x, y, z
	}
	if x, y, z, e := d.Gravity(); e == nil {
		s.GravX, s.GravY, s.GravZ = x, y, z
	}
	if t, e := d.Temperature(); e == nil {
		s.TempC = t
	}
	if sys, gyro, accel, mag, e := d.CalibrationStatus(); e == nil {
		s.Sys, s.Gyro, s.Accel, s.Mag = sys, gyro, accel, mag
	}
	*out = s
}

package bno055

// Fixed scale factors for the fused measurement blocks (datasheet table
// 3-22; all blocks are little-endian int16 fields).
const (
	scaleAccel = 1.0 / 100   // m/s²
	scaleMag   = 1.0 / 16    // µT
	scaleGyro  = 1.0 / 16    // °/s
	scaleEuler = 1.0 / 16    // °
	scaleQuat  = 1.0 / 16384 // unit quaternion
)

// readScaled decodes len(out) little-endian int16 fields starting at reg,
// each multiplied by scale. Pure function of the raw bytes and the scale.
func (d *Device) readScaled(reg byte, out []float64, scale float64) error {
	n := 2 * len(out)
	if err := d.readBytes(reg, d.r[:n]); err != nil {
		return err
	}
	for i := range out {
		raw := int16(uint16(d.r[2*i]) | uint16(d.r[2*i+1])<<8)
		out[i] = float64(raw) * scale
	}
	return nil
}

func (d *Device) readVec3(reg byte, scale float64) (x, y, z float64, err error) {
	var v [3]float64
	err = d.readScaled(reg, v[:], scale)
	return v[0], v[1], v[2], err
}

// Acceleration returns the raw accelerometer reading in m/s², gravity
// included.
func (d *Device) Acceleration() (x, y, z float64, err error) {
	return d.readVec3(regAccel, scaleAccel)
}

// Magnetic returns the magnetometer reading in µT.
func (d *Device) Magnetic() (x, y, z float64, err error) {
	return d.readVec3(regMag, scaleMag)
}

// Gyro returns the angular rate in °/s.
func (d *Device) Gyro() (x, y, z float64, err error) {
	return d.readVec3(regGyro, scaleGyro)
}

// Euler returns the fused orientation as heading, roll, pitch in degrees.
// Absolute only in the magnetometer-referenced modes (COMPASS, NDOF).
func (d *Device) Euler() (heading, roll, pitch float64, err error) {
	return d.readVec3(regEuler, scaleEuler)
}

// Quaternion returns the fused orientation as a unit quaternion.
func (d *Device) Quaternion() (w, x, y, z float64, err error) {
	var v [4]float64
	err = d.readScaled(regQuat, v[:], scaleQuat)
	return v[0], v[1], v[2], v[3], err
}

// LinearAcceleration returns the acceleration with gravity removed, in m/s².
func (d *Device) LinearAcceleration() (x, y, z float64, err error) {
	return d.readVec3(regLinAccel, scaleAccel)
}

// Gravity returns the gravity vector in m/s².
func (d *Device) Gravity() (x, y, z float64, err error) {
	return d.readVec3(regGravity, scaleAccel)
}

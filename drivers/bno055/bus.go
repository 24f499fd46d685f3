package bno055

// I2C register operations. Register writes are [sub-address, value]; reads
// are a sub-address write followed by a repeated-start read, atomic within
// one Tx call.

func (d *Device) readRegister(reg byte) (byte, error) {
	d.w[0] = reg
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, err
	}
	return d.r[0], nil
}

func (d *Device) writeRegister(reg, val byte) error {
	d.w[0] = reg
	d.w[1] = val
	return d.i2c.Tx(d.addr, d.w[:2], nil)
}

func (d *Device) readBytes(reg byte, buf []byte) error {
	d.w[0] = reg
	return d.i2c.Tx(d.addr, d.w[:1], buf)
}

func (d *Device) writeBytes(reg byte, data []byte) error {
	buf := make([]byte, 1+len(data))
	buf[0] = reg
	copy(buf[1:], data)
	return d.i2c.Tx(d.addr, buf, nil)
}

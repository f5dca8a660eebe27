package hypercurve

// Orientation describes a 4D orientation as six angles, one per coordinate
// plane, in radians.
type Orientation struct {
	XY, YZ, ZX float64
	XW, YW, ZW float64
}

// Matrix returns the orientation matrix, the product of the six elementary
// rotations in the order xy, yz, zx, xw, yw, zw. Rotations do not commute;
// the order is part of the contract.
func (o Orientation) Matrix() Matrix {
	return o.Straightened(0)
}

// Straightened returns the orientation matrix with the three angles that
// involve the w axis scaled by 1 − s. At s = 0 this is [Orientation.Matrix];
// at s = 1 only the purely 3D rotations remain.
func (o Orientation) Straightened(s float64) Matrix {
	k := 1 - s
	m := RotateXY(o.XY)
	m = m.Mul(RotateYZ(o.YZ))
	m = m.Mul(RotateZX(o.ZX))
	m = m.Mul(RotateXW(k * o.XW))
	m = m.Mul(RotateYW(k * o.YW))
	m = m.Mul(RotateZW(k * o.ZW))
	return m
}

// Angle returns the angle of plane p.
func (o Orientation) Angle(p Plane) float64 {
	switch p {
	case PlaneXY:
		return o.XY
	case PlaneYZ:
		return o.YZ
	case PlaneZX:
		return o.ZX
	case PlaneXW:
		return o.XW
	case PlaneYW:
		return o.YW
	case PlaneZW:
		return o.ZW
	default:
		panic("invalid plane")
	}
}

package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	s, c := Sincos(angle / 2)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// QuatFromRotationY is a rotation of angle radians about +Y.
func QuatFromRotationY(angle float32) Quat {
	return QuatFromAxisAngle(UnitY, angle)
}

// QuatLookRotation returns the rotation that points local -Z along forward
// with local +Y as close to up as possible. A zero forward, or one parallel
// to up, yields the identity.
func QuatLookRotation(forward, up Vec3) Quat {
	back := forward.Neg().Normalize()
	right := up.Cross(back).Normalize()
	if back == (Vec3{}) || right == (Vec3{}) {
		return QuatIdentity()
	}
	newUp := back.Cross(right)
	return quatFromBasis(right, newUp, back)
}

// quatFromBasis converts an orthonormal basis (the columns of a rotation
// matrix) to a quaternion.
func quatFromBasis(x, y, z Vec3) Quat {
	m00, m01, m02 := x.X, y.X, z.X
	m10, m11, m12 := x.Y, y.Y, z.Y
	m20, m21, m22 := x.Z, y.Z, z.Z

	trace := m00 + m11 + m22
	var q Quat
	switch {
	case trace > 0:
		s := 0.5 / sqrtf(trace+1)
		q = Quat{X: (m21 - m12) * s, Y: (m02 - m20) * s, Z: (m10 - m01) * s, W: 0.25 / s}
	case m00 > m11 && m00 > m22:
		s := 2 * sqrtf(1+m00-m11-m22)
		q = Quat{X: 0.25 * s, Y: (m01 + m10) / s, Z: (m02 + m20) / s, W: (m21 - m12) / s}
	case m11 > m22:
		s := 2 * sqrtf(1+m11-m00-m22)
		q = Quat{X: (m01 + m10) / s, Y: 0.25 * s, Z: (m12 + m21) / s, W: (m02 - m20) / s}
	default:
		s := 2 * sqrtf(1+m22-m00-m11)
		q = Quat{X: (m02 + m20) / s, Y: (m12 + m21) / s, Z: 0.25 * s, W: (m10 - m01) / s}
	}
	return q.Normalize()
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := sqrtf(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if length < 0.0001 {
		return QuatIdentity()
	}
	inv := 1 / length
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Mul multiplies two quaternions (applies other first, then q).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate applies the rotation to a vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	q = q.Normalize()

	xx, xy, xz, xw := q.X*q.X, q.X*q.Y, q.X*q.Z, q.X*q.W
	yy, yz, yw := q.Y*q.Y, q.Y*q.Z, q.Y*q.W
	zz, zw := q.Z*q.Z, q.Z*q.W

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

func sqrtf(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

package geom

import "fmt"

// Mat3 is a row-major 3x3 matrix. Vectors are treated as row vectors and
// multiplied from the left: v' = v * M.
type Mat3 struct {
	m [3][3]float64
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{m: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// RotationPitch returns the rotation matrix for a rotation of angle around
// the X axis.
func RotationPitch(angle Angle) Mat3 {
	s, c := angle.Sin(), angle.Cos()
	return Mat3{m: [3][3]float64{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}}
}

// RotationYaw returns the rotation matrix for a rotation of angle around the
// Y axis.
func RotationYaw(angle Angle) Mat3 {
	s, c := angle.Sin(), angle.Cos()
	return Mat3{m: [3][3]float64{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}}
}

// RotationRoll returns the rotation matrix for a rotation of angle around
// the Z axis.
func RotationRoll(angle Angle) Mat3 {
	s, c := angle.Sin(), angle.Cos()
	return Mat3{m: [3][3]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}}
}

// Mul returns the product a * b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a.m[i][k] * b.m[k][j]
			}
			r.m[i][j] = sum
		}
	}
	return r
}

// MulVector returns v * m (v treated as a row vector).
func (m Mat3) MulVector(v Vector) Vector {
	in := [3]float64{v.X, v.Y, v.Z}
	var out [3]float64
	for j := 0; j < 3; j++ {
		var sum float64
		for k := 0; k < 3; k++ {
			sum += in[k] * m.m[k][j]
		}
		out[j] = sum
	}
	return Vector{X: out[0], Y: out[1], Z: out[2]}
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.m[j][i] = m.m[i][j]
		}
	}
	return r
}

// Mat4 is a row-major 4x4 matrix, used for the affine transform a mesh
// applies to its local-space vertices.
type Mat4 struct {
	m [4][4]float64
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		r.m[i][i] = 1
	}
	return r
}

// Scaling4 returns a uniform (or per-axis) scaling matrix.
func Scaling4(x, y, z float64) Mat4 {
	r := Identity4()
	r.m[0][0], r.m[1][1], r.m[2][2] = x, y, z
	return r
}

// Translation4 returns a translation matrix.
func Translation4(t Vector) Mat4 {
	r := Identity4()
	r.m[3][0], r.m[3][1], r.m[3][2] = t.X, t.Y, t.Z
	return r
}

// RotationPitch4 embeds RotationPitch in homogeneous form.
func RotationPitch4(angle Angle) Mat4 { return embed3(RotationPitch(angle)) }

// RotationYaw4 embeds RotationYaw in homogeneous form.
func RotationYaw4(angle Angle) Mat4 { return embed3(RotationYaw(angle)) }

// RotationRoll4 embeds RotationRoll in homogeneous form.
func RotationRoll4(angle Angle) Mat4 { return embed3(RotationRoll(angle)) }

func embed3(a Mat3) Mat4 {
	r := Identity4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.m[i][j] = a.m[i][j]
		}
	}
	return r
}

// Mul returns the product a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a.m[i][k] * b.m[k][j]
			}
			r.m[i][j] = sum
		}
	}
	return r
}

// TransformPoint applies m to a point (implicit w=1), treating v as a row
// vector multiplied from the left.
func (m Mat4) TransformPoint(v Vector) Vector {
	in := [4]float64{v.X, v.Y, v.Z, 1}
	return m.mulRow(in)
}

// TransformDirection applies m to a direction (implicit w=0), so
// translation has no effect.
func (m Mat4) TransformDirection(v Vector) Vector {
	in := [4]float64{v.X, v.Y, v.Z, 0}
	return m.mulRow(in)
}

func (m Mat4) mulRow(in [4]float64) Vector {
	var out [4]float64
	for j := 0; j < 4; j++ {
		var sum float64
		for k := 0; k < 4; k++ {
			sum += in[k] * m.m[k][j]
		}
		out[j] = sum
	}
	return Vector{X: out[0], Y: out[1], Z: out[2]}
}

// Inverse computes the inverse of m via Gauss-Jordan elimination. It panics
// if m is singular, which should never happen for the rigid-plus-uniform-
// scale transforms meshes build (see Mesh.localToWorld).
func (m Mat4) Inverse() Mat4 {
	var aug [4][8]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			aug[i][j] = m.m[i][j]
		}
		aug[i][4+i] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		for row := col + 1; row < 4; row++ {
			if abs(aug[row][col]) > abs(aug[pivot][col]) {
				pivot = row
			}
		}
		if abs(aug[pivot][col]) < 1e-12 {
			panic(fmt.Sprintf("geom: cannot invert singular matrix (column %d)", col))
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pivotVal := aug[col][col]
		for j := 0; j < 8; j++ {
			aug[col][j] /= pivotVal
		}

		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := aug[row][col]
			for j := 0; j < 8; j++ {
				aug[row][j] -= factor * aug[col][j]
			}
		}
	}

	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.m[i][j] = aug[i][4+j]
		}
	}
	return r
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

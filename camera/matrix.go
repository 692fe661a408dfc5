package camera

// Matrix4 is a 4x4 matrix stored row-major. The camera only ever builds
// combinations of axis-aligned scale and translation, so the interesting
// entries are the x/y diagonal scales and the translation column.
type Matrix4 [16]float64

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewProjectionMatrix returns an orthographic projection mapping
// [left,right] to [-1,1] on x and [bottom,top] to [-1,1] on y.
func NewProjectionMatrix(left, right, top, bottom float64) Matrix4 {
	xScale := 2.0 / (right - left)
	yScale := 2.0 / (top - bottom)
	xTrans := -(right + left) / (right - left)
	yTrans := -(top + bottom) / (top - bottom)

	m := Identity()
	m[0] = xScale
	m[5] = yScale
	m[3] = xTrans
	m[7] = yTrans
	return m
}

// NewTranslationMatrix returns a translation by (x, y).
func NewTranslationMatrix(x, y float64) Matrix4 {
	m := Identity()
	m[3] = x
	m[7] = y
	return m
}

// Mul returns m * o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * o[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// Apply transforms the point (x, y) as the homogeneous vector (x, y, 0, 1)
// and returns the first two components.
func (m Matrix4) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[3], m[4]*x + m[5]*y + m[7]
}

// Inverse returns the inverse of m. It relies on the matrix being an
// axis-aligned scale plus translation, which is all the camera ever
// produces, and uses the closed form for that family.
func (m Matrix4) Inverse() Matrix4 {
	r := Identity()
	r[0] = 1.0 / m[0]
	r[5] = 1.0 / m[5]
	r[10] = 1.0 / m[10]
	r[3] = -m[3] / m[0]
	r[7] = -m[7] / m[5]
	r[11] = -m[11] / m[10]
	return r
}

// ScaleX returns the x diagonal scale entry.
func (m Matrix4) ScaleX() float64 { return m[0] }

// ScaleY returns the y diagonal scale entry.
func (m Matrix4) ScaleY() float64 { return m[5] }

// GL returns the matrix flattened column-major as float32, ready for a
// graphics API uniform upload.
func (m Matrix4) GL() [16]float32 {
	var f [16]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			f[col*4+row] = float32(m[row*4+col])
		}
	}
	return f
}

package geometry

import "math"

// Matrix is a 2D affine transform mapping world coordinates to
// container-local (screen) coordinates. The six scalars are stored
// row-major as [a b tx; c d ty]:
//
//	screenX = a*x + b*y + tx
//	screenY = c*x + d*y + ty
//
// Only uniform scale is supported; GetScale always returns a strictly
// positive finite value for matrices built through this API.
//
// The canonical zoom-about-cursor idiom, applied by the host in
// response to an OnScale intent at cursor (x, y) with scroll sign d:
//
//	k := 1.2
//	if d < 0 {
//		k = 1 / 1.2
//	}
//	m = m.Translate(-x, -y).Scale(k).Translate(x, y)
type Matrix struct {
	a, b, tx float64
	c, d, ty float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{a: 1, d: 1}
}

// NewMatrix builds a Matrix from its six scalars.
func NewMatrix(a, b, tx, c, d, ty float64) Matrix {
	return Matrix{a: a, b: b, tx: tx, c: c, d: d, ty: ty}
}

// Translate post-composes a screen-space translation: points already
// mapped by m are shifted by (dx, dy). Positive values move content
// rightward and downward.
func (m Matrix) Translate(dx, dy float64) Matrix {
	m.tx += dx
	m.ty += dy
	return m
}

// Scale post-composes a uniform scale about the screen origin,
// multiplying the current scale by s.
func (m Matrix) Scale(s float64) Matrix {
	m.a *= s
	m.b *= s
	m.tx *= s
	m.c *= s
	m.d *= s
	m.ty *= s
	return m
}

// GetScale returns the current uniform scale, the magnitude of the
// first column.
func (m Matrix) GetScale() float64 {
	return math.Hypot(m.a, m.c)
}

// GetTranslation returns the current translation (tx, ty).
func (m Matrix) GetTranslation() (float64, float64) {
	return m.tx, m.ty
}

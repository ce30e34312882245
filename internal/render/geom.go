package render

// GeoM is a 2x3 affine transformation matrix:
//
//	| A  B  Tx |
//	| C  D  Ty |
//
// The zero value is the identity transform. Backends convert it to their
// native matrix type.
type GeoM struct {
	a1, b, c, d1 float64 // a-1 and d-1 so the zero value is identity
	tx, ty       float64
}

// Element returns the matrix element at row i, column j (j == 2 is translation).
func (g *GeoM) Element(i, j int) float64 {
	switch {
	case i == 0 && j == 0:
		return g.a1 + 1
	case i == 0 && j == 1:
		return g.b
	case i == 0 && j == 2:
		return g.tx
	case i == 1 && j == 0:
		return g.c
	case i == 1 && j == 1:
		return g.d1 + 1
	case i == 1 && j == 2:
		return g.ty
	}
	panic("render: GeoM index out of range")
}

func (g *GeoM) set(a, b, c, d, tx, ty float64) {
	g.a1, g.b, g.c, g.d1, g.tx, g.ty = a-1, b, c, d-1, tx, ty
}

// Translate shifts the image by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.tx += tx
	g.ty += ty
}

// Scale scales the image by (sx, sy).
func (g *GeoM) Scale(sx, sy float64) {
	a, b, c, d := g.a1+1, g.b, g.c, g.d1+1
	g.set(a*sx, b*sx, c*sy, d*sy, g.tx*sx, g.ty*sy)
}

// Apply transforms the point (x, y).
func (g *GeoM) Apply(x, y float64) (float64, float64) {
	return (g.a1+1)*x + g.b*y + g.tx, g.c*x + (g.d1+1)*y + g.ty
}

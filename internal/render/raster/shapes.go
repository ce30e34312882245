package raster

import (
	"image"
	"image/color"
	"math"
)

// circle is a coverage mask for a filled circle, sampled at pixel centres.
type circle struct {
	cx, cy, r float64
}

func (c *circle) ColorModel() color.Model { return color.AlphaModel }

func (c *circle) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(c.cx-c.r)),
		int(math.Floor(c.cy-c.r)),
		int(math.Ceil(c.cx+c.r)),
		int(math.Ceil(c.cy+c.r)),
	)
}

func (c *circle) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - c.cx
	dy := float64(y) + 0.5 - c.cy
	if dx*dx+dy*dy <= c.r*c.r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// segment is a coverage mask for a thick line with round caps.
type segment struct {
	x0, y0, x1, y1 float64
	half           float64
}

func (s *segment) ColorModel() color.Model { return color.AlphaModel }

func (s *segment) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(math.Min(s.x0, s.x1)-s.half)),
		int(math.Floor(math.Min(s.y0, s.y1)-s.half)),
		int(math.Ceil(math.Max(s.x0, s.x1)+s.half)),
		int(math.Ceil(math.Max(s.y0, s.y1)+s.half)),
	)
}

func (s *segment) At(x, y int) color.Color {
	px, py := float64(x)+0.5, float64(y)+0.5
	dx, dy := s.x1-s.x0, s.y1-s.y0

	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = ((px-s.x0)*dx + (py-s.y0)*dy) / l2
		t = math.Max(0, math.Min(1, t))
	}
	ex := px - (s.x0 + t*dx)
	ey := py - (s.y0 + t*dy)
	if ex*ex+ey*ey <= s.half*s.half {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

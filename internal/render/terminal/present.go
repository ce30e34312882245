package terminal

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

// upperHalf paints the top half of a cell in the foreground colour and the
// bottom half in the background colour.
const upperHalf = '▀'

// presenter downsamples a frame to two pixels per cell and writes the cells.
type presenter struct {
	cells *image.RGBA
}

func (p *presenter) present(screen tcell.Screen, frame *image.RGBA) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	want := image.Rect(0, 0, cols, rows*2)
	if p.cells == nil || p.cells.Bounds() != want {
		p.cells = image.NewRGBA(want)
	}
	draw.ApproxBiLinear.Scale(p.cells, want, frame, frame.Bounds(), draw.Src, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := p.cells.RGBAAt(x, y*2)
			bottom := p.cells.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	screen.Show()
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

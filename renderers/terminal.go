package renderers

import (
	"github.com/reusee/taisprite/gamelisp"
	"github.com/xyproto/vt"
)

// Terminal renders the framebuffer into a vt canvas, one text cell per
// pixel, quantizing RGB colors to the terminal palette. Text draws are
// written as glyphs directly since terminal cells are native glyphs.
type Terminal struct {
	fb     *Framebuffer
	canvas *vt.Canvas
}

func NewTerminal(width, height int32) *Terminal {
	vt.Init()
	canvas := vt.NewCanvas()
	canvas.HideCursor()
	return &Terminal{
		fb:     NewFramebuffer(width, height),
		canvas: canvas,
	}
}

var _ gamelisp.Renderer = new(Terminal)

func (t *Terminal) Close() {
	vt.Close()
}

func (t *Terminal) Clear(color int32) {
	t.fb.Clear(color)
}

func (t *Terminal) FillRect(x, y, w, h int32, color int32) {
	t.fb.FillRect(x, y, w, h, color)
}

func (t *Terminal) DrawText(x, y int32, text string, fg, bg int32) {
	t.fb.DrawText(x, y, text, fg, bg)
}

func (t *Terminal) BlitSprite(x, y, w, h int32, pixels []int32, transparent int32) {
	t.fb.BlitSprite(x, y, w, h, pixels, transparent)
}

func (t *Terminal) Present() {
	t.canvas.Clear()
	cw, ch := t.canvas.Size()
	w := min(int32(cw), t.fb.Width())
	h := min(int32(ch), t.fb.Height())
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := t.fb.At(x, y)
			if c == 0 {
				continue
			}
			t.canvas.WriteRune(uint(x), uint(y), paletteColor(c), vt.DefaultBackground, '█')
		}
	}
	for _, td := range t.fb.Texts() {
		if td.Y < 0 || td.Y >= h || td.X < 0 {
			continue
		}
		t.canvas.WriteString(uint(td.X), uint(td.Y), paletteColor(td.Fg), vt.DefaultBackground, td.Text)
	}
	t.canvas.Draw()
}

// paletteColor maps a packed 0xRRGGBB color to the nearest of the eight
// basic terminal colors, using the bright variant for high luminance.
func paletteColor(c int32) vt.AttributeColor {
	r := (c >> 16) & 0xff
	g := (c >> 8) & 0xff
	b := c & 0xff

	index := 0
	if r >= 0x80 {
		index |= 1
	}
	if g >= 0x80 {
		index |= 2
	}
	if b >= 0x40 {
		index |= 4
	}

	switch index {
	case 1:
		return vt.Red
	case 2:
		return vt.Green
	case 3:
		return vt.Yellow
	case 4:
		return vt.Blue
	case 5:
		return vt.Magenta
	case 6:
		return vt.Cyan
	case 7:
		return vt.White
	}
	return vt.LightGray
}

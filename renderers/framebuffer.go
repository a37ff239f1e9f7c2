package renderers

import (
	"sync"

	"github.com/reusee/taisprite/gamelisp"
)

// Framebuffer is an in-memory pixel target. It backs the terminal
// renderer and is usable standalone in tests and headless runs.
type Framebuffer struct {
	mu     sync.Mutex
	width  int32
	height int32
	pixels []int32
	// text overlays drawn since the last Clear, kept for cell-based
	// presentation targets that render glyphs natively
	texts []TextDraw
}

type TextDraw struct {
	X, Y   int32
	Text   string
	Fg, Bg int32
}

func NewFramebuffer(width, height int32) *Framebuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]int32, width*height),
	}
}

var _ gamelisp.Renderer = new(Framebuffer)

func (f *Framebuffer) Width() int32  { return f.width }
func (f *Framebuffer) Height() int32 { return f.height }

func (f *Framebuffer) At(x, y int32) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	return f.pixels[y*f.width+x]
}

func (f *Framebuffer) Texts() []TextDraw {
	f.mu.Lock()
	defer f.mu.Unlock()
	ret := make([]TextDraw, len(f.texts))
	copy(ret, f.texts)
	return ret
}

func (f *Framebuffer) Clear(color int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pixels {
		f.pixels[i] = color
	}
	f.texts = f.texts[:0]
}

func (f *Framebuffer) FillRect(x, y, w, h int32, color int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, f.width)
	y1 := min(y+h, f.height)
	for py := y0; py < y1; py++ {
		row := f.pixels[py*f.width : (py+1)*f.width]
		for px := x0; px < x1; px++ {
			row[px] = color
		}
	}
}

func (f *Framebuffer) DrawText(x, y int32, text string, fg, bg int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, TextDraw{
		X:    x,
		Y:    y,
		Text: text,
		Fg:   fg,
		Bg:   bg,
	})
}

func (f *Framebuffer) BlitSprite(x, y, w, h int32, pixels []int32, transparent int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for sy := int32(0); sy < h; sy++ {
		py := y + sy
		if py < 0 || py >= f.height {
			continue
		}
		for sx := int32(0); sx < w; sx++ {
			px := x + sx
			if px < 0 || px >= f.width {
				continue
			}
			c := pixels[sy*w+sx]
			if c == transparent {
				continue
			}
			f.pixels[py*f.width+px] = c
		}
	}
}

func (f *Framebuffer) Present() {}

package renderers

import (
	"testing"
)

func TestFramebufferClip(t *testing.T) {
	fb := NewFramebuffer(8, 8)

	fb.FillRect(-2, -2, 4, 4, 7)
	if fb.At(0, 0) != 7 {
		t.Fatalf("got %v", fb.At(0, 0))
	}
	if fb.At(2, 2) != 0 {
		t.Fatalf("got %v", fb.At(2, 2))
	}

	fb.FillRect(6, 6, 10, 10, 9)
	if fb.At(7, 7) != 9 {
		t.Fatalf("got %v", fb.At(7, 7))
	}
	// out of bounds reads are zero
	if fb.At(8, 8) != 0 {
		t.Fatalf("got %v", fb.At(8, 8))
	}
}

func TestFramebufferBlitTransparent(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(1)

	fb.BlitSprite(0, 0, 2, 2, []int32{
		5, -1,
		-1, 5,
	}, -1)

	if fb.At(0, 0) != 5 {
		t.Fatalf("got %v", fb.At(0, 0))
	}
	if fb.At(1, 0) != 1 {
		t.Fatalf("got %v", fb.At(1, 0))
	}
	if fb.At(1, 1) != 5 {
		t.Fatalf("got %v", fb.At(1, 1))
	}
}

func TestFramebufferTextOverlay(t *testing.T) {
	fb := NewFramebuffer(16, 4)
	fb.DrawText(1, 2, "hi", 7, 0)
	texts := fb.Texts()
	if len(texts) != 1 {
		t.Fatalf("got %v", len(texts))
	}
	if texts[0].Text != "hi" || texts[0].X != 1 || texts[0].Y != 2 {
		t.Fatalf("got %+v", texts[0])
	}
	fb.Clear(0)
	if len(fb.Texts()) != 0 {
		t.Fatal()
	}
}

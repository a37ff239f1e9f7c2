package gamelisp

import "fmt"

// Transparent is the pixel value skipped by the renderer when blitting.
// Fresh sprites are fully transparent.
const Transparent int32 = -1

type SpriteData struct {
	W, H   int32
	Pixels []int32
}

// SpriteStore is the fixed-capacity sprite table owned by the engine and
// exposed to builtins only. Entries are bounded by a maximum dimension;
// exceeding the table capacity is a usage error, never a silent overwrite.
type SpriteStore struct {
	capacity int
	maxDim   int32
	sprites  []SpriteData
}

func NewSpriteStore(capacity int, maxDim int32) *SpriteStore {
	return &SpriteStore{
		capacity: capacity,
		maxDim:   maxDim,
	}
}

func (s *SpriteStore) Make(w, h int32) (int32, error) {
	if w <= 0 || h <= 0 || w > s.maxDim || h > s.maxDim {
		return 0, fmt.Errorf("%dx%d exceeds %dx%d: %w", w, h, s.maxDim, s.maxDim, ErrSpriteTooLarge)
	}
	if len(s.sprites) >= s.capacity {
		return 0, fmt.Errorf("capacity %d: %w", s.capacity, ErrSpriteCapacityExceeded)
	}
	pixels := make([]int32, w*h)
	for i := range pixels {
		pixels[i] = Transparent
	}
	s.sprites = append(s.sprites, SpriteData{W: w, H: h, Pixels: pixels})
	return int32(len(s.sprites) - 1), nil
}

func (s *SpriteStore) Get(index int32) (*SpriteData, error) {
	if int(index) < 0 || int(index) >= len(s.sprites) {
		return nil, fmt.Errorf("no sprite %d", index)
	}
	return &s.sprites[index], nil
}

func (s *SpriteStore) SetPixel(index, x, y, color int32) error {
	sp, err := s.Get(index)
	if err != nil {
		return err
	}
	if x < 0 || y < 0 || x >= sp.W || y >= sp.H {
		return fmt.Errorf("pixel %d,%d outside %dx%d sprite", x, y, sp.W, sp.H)
	}
	sp.Pixels[y*sp.W+x] = color
	return nil
}

func (s *SpriteStore) Len() int {
	return len(s.sprites)
}

// All returns a copy of the table, for snapshots.
func (s *SpriteStore) All() []SpriteData {
	ret := make([]SpriteData, len(s.sprites))
	copy(ret, s.sprites)
	return ret
}

func (s *SpriteStore) restore(sprites []SpriteData) {
	s.sprites = append(s.sprites[:0], sprites...)
}

// RectsOverlap reports axis-aligned rectangle intersection in device
// pixel space.
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 int32) bool {
	return x1 < x2+w2 && x2 < x1+w1 &&
		y1 < y2+h2 && y2 < y1+h1
}

// PointInRect reports whether a point falls inside a rectangle.
func PointInRect(px, py, x, y, w, h int32) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

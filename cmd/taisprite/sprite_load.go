package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/taisprite/gamelisp"
)

// registerHostBuiltins installs builtins that need host facilities the
// machine itself does not have, like filesystem access.
func registerHostBuiltins(engine *gamelisp.Engine) error {
	return engine.Register("load-sprite", loadSprite)
}

// (load-sprite "path.png") decodes a PNG into a new sprite and returns it.
// Pixels with alpha below half become transparent.
func loadSprite(e *gamelisp.Engine, args []gamelisp.Ref) (gamelisp.Ref, error) {
	if len(args) != 1 {
		return gamelisp.Nil, fmt.Errorf("%w: load-sprite wants 1 argument", gamelisp.ErrTypeMismatch)
	}
	heap := e.Heap()
	if heap.Kind(args[0]) != gamelisp.KindString {
		return gamelisp.Nil, fmt.Errorf("%w: load-sprite wants a path string", gamelisp.ErrTypeMismatch)
	}
	path := heap.TextValue(args[0])

	content, err := os.ReadFile(path)
	if err != nil {
		return gamelisp.Nil, err
	}

	mtype := mimetype.Detect(content)
	if !mtype.Is("image/png") {
		return gamelisp.Nil, fmt.Errorf("%w: %s is %s, want image/png", gamelisp.ErrTypeMismatch, path, mtype)
	}

	img, err := png.Decode(bytes.NewReader(content))
	if err != nil {
		return gamelisp.Nil, err
	}

	bounds := img.Bounds()
	w := int32(bounds.Dx())
	h := int32(bounds.Dy())

	sprites := e.Sprites()
	index, err := sprites.Make(w, h)
	if err != nil {
		return gamelisp.Nil, err
	}

	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			color := packColor(img.At(bounds.Min.X+int(x), bounds.Min.Y+int(y)))
			if err := sprites.SetPixel(index, x, y, color); err != nil {
				return gamelisp.Nil, err
			}
		}
	}

	return heap.Sprite(index)
}

func packColor(c color.Color) int32 {
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return gamelisp.Transparent
	}
	return int32(r>>8)<<16 | int32(g>>8)<<8 | int32(b>>8)
}

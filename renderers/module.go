package renderers

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taisprite/gameconfigs"
	"github.com/reusee/taisprite/gamelisp"
	"github.com/reusee/taisprite/modes"
)

type Module struct {
	dscope.Module
	GameConfigs gameconfigs.Module
}

func (Module) Renderer(
	mode modes.Mode,
	width gameconfigs.DisplayWidth,
	height gameconfigs.DisplayHeight,
) gamelisp.Renderer {
	if mode == modes.ModeDevelopment {
		return NewFramebuffer(int32(width), int32(height))
	}
	return NewTerminal(int32(width), int32(height))
}

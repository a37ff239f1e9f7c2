package gameconfigs

import (
	"github.com/reusee/taisprite/gamelisp"
	"github.com/reusee/taisprite/logs"
)

func (Module) Engine(
	config gamelisp.Config,
	logger logs.Logger,
	renderer gamelisp.Renderer,
	input gamelisp.Input,
) *gamelisp.Engine {
	engine, err := gamelisp.New(config, logger, renderer, input)
	if err != nil {
		panic(err)
	}
	return engine
}

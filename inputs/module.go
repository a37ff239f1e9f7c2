package inputs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taisprite/gamelisp"
)

type Module struct {
	dscope.Module
}

func (Module) State() *State {
	return NewState()
}

func (Module) Input(
	state *State,
) gamelisp.Input {
	return state
}

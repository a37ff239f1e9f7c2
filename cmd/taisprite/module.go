package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taisprite/debugs"
	"github.com/reusee/taisprite/gameconfigs"
	"github.com/reusee/taisprite/inputs"
	"github.com/reusee/taisprite/nets"
	"github.com/reusee/taisprite/renderers"
)

type Module struct {
	dscope.Module
	GameConfigs gameconfigs.Module
	Renderers   renderers.Module
	Inputs      inputs.Module
	Nets        nets.Module
	Debugs      debugs.Module
}

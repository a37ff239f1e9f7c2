package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taisprite/gameconfigs"
	"github.com/reusee/taisprite/logs"
)

type Module struct {
	dscope.Module
	GameConfigs gameconfigs.Module
	Logs        logs.Module
}

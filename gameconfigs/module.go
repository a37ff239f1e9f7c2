package gameconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taisprite/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

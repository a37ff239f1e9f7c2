package gameconfigs

import (
	"github.com/reusee/taisprite/cmds"
	"github.com/reusee/taisprite/configs"
	"github.com/reusee/taisprite/vars"
)

type LiveAddr string

var _ configs.Configurable = LiveAddr("")

func (LiveAddr) ConfigExpr() string {
	return "live_addr"
}

var liveAddrFlag = cmds.Var[string]("-live-addr")

func (Module) LiveAddr(
	loader configs.Loader,
) LiveAddr {
	return LiveAddr(vars.FirstNonZero(
		*liveAddrFlag,
		configs.First[string](loader, LiveAddr("").ConfigExpr()),
		"127.0.0.1:7107",
	))
}

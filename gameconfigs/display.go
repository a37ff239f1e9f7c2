package gameconfigs

import (
	"github.com/reusee/taisprite/configs"
	"github.com/reusee/taisprite/vars"
)

type DisplayWidth int

var _ configs.Configurable = DisplayWidth(0)

func (DisplayWidth) ConfigExpr() string {
	return "display.width"
}

type DisplayHeight int

var _ configs.Configurable = DisplayHeight(0)

func (DisplayHeight) ConfigExpr() string {
	return "display.height"
}

func (Module) DisplayWidth(
	loader configs.Loader,
) DisplayWidth {
	return DisplayWidth(vars.FirstNonZero(
		configs.First[int](loader, DisplayWidth(0).ConfigExpr()),
		128,
	))
}

func (Module) DisplayHeight(
	loader configs.Loader,
) DisplayHeight {
	return DisplayHeight(vars.FirstNonZero(
		configs.First[int](loader, DisplayHeight(0).ConfigExpr()),
		96,
	))
}

package gameconfigs

import (
	"github.com/reusee/taisprite/cmds"
	"github.com/reusee/taisprite/configs"
	"github.com/reusee/taisprite/gamelisp"
	"github.com/reusee/taisprite/vars"
)

var (
	heapCapacityFlag   = cmds.Var[int]("-heap-capacity")
	symbolCapacityFlag = cmds.Var[int]("-symbol-capacity")
	spriteCapacityFlag = cmds.Var[int]("-sprite-capacity")
	maxEvalDepthFlag   = cmds.Var[int]("-max-eval-depth")
)

func (Module) MachineConfig(
	loader configs.Loader,
) gamelisp.Config {
	config := gamelisp.DefaultConfig

	config.HeapCapacity = vars.FirstNonZero(
		*heapCapacityFlag,
		configs.First[int](loader, "heap_capacity"),
		config.HeapCapacity,
	)
	config.SymbolCapacity = vars.FirstNonZero(
		*symbolCapacityFlag,
		configs.First[int](loader, "symbol_capacity"),
		config.SymbolCapacity,
	)
	config.SpriteCapacity = vars.FirstNonZero(
		*spriteCapacityFlag,
		configs.First[int](loader, "sprite_capacity"),
		config.SpriteCapacity,
	)
	config.MaxSpriteDim = vars.FirstNonZero(
		configs.First[int](loader, "max_sprite_dim"),
		config.MaxSpriteDim,
	)
	config.MaxEvalDepth = vars.FirstNonZero(
		*maxEvalDepthFlag,
		configs.First[int](loader, "max_eval_depth"),
		config.MaxEvalDepth,
	)

	return config
}

package debugs

import (
	"github.com/reusee/taisprite/gamelisp"
)

// EngineGlobals snapshots inspectable engine state for a Tap session.
func EngineGlobals(engine *gamelisp.Engine) map[string]any {
	heap := engine.Heap()
	var callbacks []string
	for slot := 0; slot < 1+int(gamelisp.NumButtons); slot++ {
		callbacks = append(callbacks, engine.Render(engine.Callback(slot)))
	}
	return map[string]any{
		"heap_used":     heap.Used(),
		"heap_capacity": heap.Capacity(),
		"collections":   heap.Collections(),
		"symbols":       engine.Symbols().Len(),
		"sprites":       engine.Sprites().Len(),
		"running":       engine.Running(),
		"callbacks":     callbacks,
		"global":        engine.Render(engine.Global()),
	}
}

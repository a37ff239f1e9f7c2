package main

import (
	"context"
	"os"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/taisprite/cmds"
	"github.com/reusee/taisprite/debugs"
	"github.com/reusee/taisprite/gamelisp"
	"github.com/reusee/taisprite/inputs"
	"github.com/reusee/taisprite/logs"
	"github.com/reusee/taisprite/modes"
	"github.com/reusee/taisprite/nets"
)

var (
	runPath     = cmds.Var[string]("-run")
	replFlag    = cmds.Switch("-repl")
	liveFlag    = cmds.Switch("-live")
	debugFlag   = cmds.Switch("-debug")
	frames      = cmds.Var[int]("-frames")
	frameMillis = cmds.Var[int]("-frame-millis")
	suspendPath = cmds.Var[string]("-suspend")
	restorePath = cmds.Var[string]("-restore")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		engine *gamelisp.Engine,
		state *inputs.State,
		liveServer *nets.LiveServer,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(ctx, "")

		ce(registerHostBuiltins(engine))

		if *restorePath != "" {
			f, err := os.Open(*restorePath)
			ce(err)
			ce(engine.Restore(f))
			ce(f.Close())
			logger.InfoContext(ctx, "restored",
				"path", *restorePath,
			)
		}

		if *runPath != "" {
			src, err := os.ReadFile(*runPath)
			ce(err)
			_, err = engine.EvalToplevel(string(src))
			ce(err)
		}

		if *liveFlag {
			ce(liveServer.Start())
			defer liveServer.Close()
		}

		if *replFlag {
			runREPL(engine)
		} else if engine.Running() || *frames > 0 || *liveFlag {
			runFrames(ctx, logger, engine, state, liveServer)
		}

		if *debugFlag {
			tap(ctx, "engine", debugs.EngineGlobals(engine))
		}

		if *suspendPath != "" {
			f, err := os.Create(*suspendPath)
			ce(err)
			ce(engine.Suspend(f))
			ce(f.Close())
			logger.InfoContext(ctx, "suspended",
				"path", *suspendPath,
			)
		}

	})

}

func runFrames(
	ctx context.Context,
	logger logs.Logger,
	engine *gamelisp.Engine,
	state *inputs.State,
	liveServer *nets.LiveServer,
) {
	interval := time.Duration(*frameMillis) * time.Millisecond
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}

	keys := startKeyReader(state)
	defer keys.stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	n := 0
	for range ticker.C {

		for _, line := range liveServer.Drain() {
			if _, err := engine.EvalToplevel(line); err != nil {
				logger.WarnContext(ctx, "live eval",
					"error", logs.WrapSpan(ctx, err),
				)
			}
		}

		if err := engine.RunFrame(); err != nil {
			logger.WarnContext(ctx, "frame",
				"error", err,
			)
		}
		keys.frameDone()

		n++
		if *frames > 0 && n >= *frames {
			return
		}
		if *frames == 0 && !engine.Running() {
			return
		}
	}
}

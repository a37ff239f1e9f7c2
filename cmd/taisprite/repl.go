package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/reusee/taisprite/gamelisp"
)

func runREPL(engine *gamelisp.Engine) {
	rl, err := readline.New("taisprite> ")
	ce(err)
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Println(err)
			}
			return
		}
		if line == "" {
			continue
		}

		result, err := engine.EvalToplevel(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(engine.Render(result))
	}
}

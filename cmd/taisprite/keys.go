package main

import (
	"time"

	"github.com/reusee/taisprite/gamelisp"
	"github.com/reusee/taisprite/inputs"
	"github.com/xyproto/vt"
)

// keyReader maps terminal keystrokes to the four buttons. Keystrokes are
// taps, not holds, so each press is held for exactly one frame and then
// released after the frame latches it.
type keyReader struct {
	state  *inputs.State
	tty    *vt.TTY
	stopCh chan struct{}
}

var keyButtons = map[string]gamelisp.Button{
	"a": gamelisp.ButtonA,
	"b": gamelisp.ButtonB,
	"x": gamelisp.ButtonX,
	"y": gamelisp.ButtonY,
}

func startKeyReader(state *inputs.State) *keyReader {
	r := &keyReader{
		state:  state,
		stopCh: make(chan struct{}),
	}
	tty, err := vt.NewTTY()
	if err != nil {
		// headless, input stays idle
		return r
	}
	r.tty = tty
	tty.SetTimeout(10 * time.Millisecond)
	go r.loop()
	return r
}

func (r *keyReader) loop() {
	for {
		select {
		case <-r.stopCh:
			return
		default:
		}
		raw := r.tty.CustomString()
		if raw == "" {
			continue
		}
		for _, c := range raw {
			if button, ok := keyButtons[string(c)]; ok {
				r.state.SetPressed(button, true)
			}
		}
	}
}

// frameDone releases all taps after the frame has latched them.
func (r *keyReader) frameDone() {
	for b := gamelisp.Button(0); b < gamelisp.NumButtons; b++ {
		r.state.SetPressed(b, false)
	}
}

func (r *keyReader) stop() {
	close(r.stopCh)
	if r.tty != nil {
		r.tty.Close()
	}
}

package gamelisp

// Button identifies one of the four physical buttons of the reference
// hardware.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	NumButtons
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "a"
	case ButtonB:
		return "b"
	case ButtonX:
		return "x"
	case ButtonY:
		return "y"
	}
	return "?"
}

// Renderer is the consumed side of the display collaborator. Coordinates
// and dimensions are device pixels; the implementation clips to its bounds.
// The engine performs no drawing itself.
type Renderer interface {
	Clear(color int32)
	FillRect(x, y, w, h int32, color int32)
	DrawText(x, y int32, text string, fg, bg int32)
	BlitSprite(x, y, w, h int32, pixels []int32, transparent int32)
	Present()
}

// Input is the consumed side of the button collaborator. Poll latches the
// current state for the frame; the edge flags are already debounced by the
// implementation or the host feeding it.
type Input interface {
	Poll()
	IsPressed(b Button) bool
	JustPressed(b Button) bool
}

type nopRenderer struct{}

func (nopRenderer) Clear(int32)                                {}
func (nopRenderer) FillRect(int32, int32, int32, int32, int32) {}
func (nopRenderer) DrawText(int32, int32, string, int32, int32) {}
func (nopRenderer) BlitSprite(int32, int32, int32, int32, []int32, int32) {
}
func (nopRenderer) Present() {}

type nopInput struct{}

func (nopInput) Poll()                 {}
func (nopInput) IsPressed(Button) bool { return false }
func (nopInput) JustPressed(Button) bool {
	return false
}

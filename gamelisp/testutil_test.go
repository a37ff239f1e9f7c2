package gamelisp

import (
	"io"
	"log/slog"
	"testing"
)

func newTestEngine(t *testing.T, config Config) *Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := New(config, logger, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func run(t *testing.T, e *Engine, src string) Ref {
	t.Helper()
	v, err := e.EvalToplevel(src)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func runNum(t *testing.T, e *Engine, src string) int32 {
	t.Helper()
	v := run(t, e, src)
	if k := e.Heap().Kind(v); k != KindNumber {
		t.Fatalf("got %v value %s", k, e.Render(v))
	}
	return e.Heap().NumberValue(v)
}

// recorder captures renderer calls for assertions.
type recorder struct {
	clears  []int32
	rects   [][5]int32
	texts   []string
	blits   int
	present int
}

func (r *recorder) Clear(color int32) {
	r.clears = append(r.clears, color)
}

func (r *recorder) FillRect(x, y, w, h, color int32) {
	r.rects = append(r.rects, [5]int32{x, y, w, h, color})
}

func (r *recorder) DrawText(x, y int32, text string, fg, bg int32) {
	r.texts = append(r.texts, text)
}

func (r *recorder) BlitSprite(x, y, w, h int32, pixels []int32, transparent int32) {
	r.blits++
}

func (r *recorder) Present() {
	r.present++
}

// buttonScript is a scripted Input: each Poll advances to the next frame
// of button states.
type buttonScript struct {
	frames [][]Button
	pos    int
	cur    map[Button]bool
	prev   map[Button]bool
}

func (s *buttonScript) Poll() {
	s.prev = s.cur
	s.cur = make(map[Button]bool)
	if s.pos < len(s.frames) {
		for _, b := range s.frames[s.pos] {
			s.cur[b] = true
		}
	}
	s.pos++
}

func (s *buttonScript) IsPressed(b Button) bool {
	return s.cur[b]
}

func (s *buttonScript) JustPressed(b Button) bool {
	return s.cur[b] && !s.prev[b]
}

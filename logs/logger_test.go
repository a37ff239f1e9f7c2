package logs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestJournalKey(t *testing.T) {
	if k := toJournalKey("logs.span"); k != "LOGS_SPAN" {
		t.Fatalf("got %s", k)
	}
	if k := toJournalKey("frame42"); k != "FRAME42" {
		t.Fatalf("got %s", k)
	}
}

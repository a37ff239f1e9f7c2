package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y"} {
		if !StrToBool(str) {
			t.Fatalf("got false for %q", str)
		}
	}
	for _, str := range []string{"false", "no", "", "whatever"} {
		if StrToBool(str) {
			t.Fatalf("got true for %q", str)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero(0, 0, 3, 4); got != 3 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero("", "a"); got != "a" {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonZero(0, 0); got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestDerefOrZero(t *testing.T) {
	n := 42
	if got := DerefOrZero(&n); got != 42 {
		t.Fatalf("got %v", got)
	}
	if got := DerefOrZero[int](nil); got != 0 {
		t.Fatalf("got %v", got)
	}
}

package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type stats struct {
		Used     int
		Running  bool
		internal int
	}

	check := func(input any, expected starlark.Value) {
		t.Helper()
		actual := toStarlarkValue(input)
		equal, err := starlark.Equal(actual, expected)
		if err != nil {
			t.Fatal(err)
		}
		if !equal {
			t.Fatalf("got %v, want %v", actual, expected)
		}
	}

	check(nil, starlark.None)
	check(true, starlark.True)
	check("heap", starlark.String("heap"))
	check(int32(42), starlark.MakeInt(42))
	check(uint8(7), starlark.MakeInt(7))
	check(3.5, starlark.Float(3.5))
	check([]int{1, 2}, starlark.NewList([]starlark.Value{
		starlark.MakeInt(1),
		starlark.MakeInt(2),
	}))

	expected := starlark.NewDict(2)
	expected.SetKey(starlark.String("Used"), starlark.MakeInt(9))
	expected.SetKey(starlark.String("Running"), starlark.True)
	check(&stats{Used: 9, Running: true, internal: 1}, expected)

	check((*stats)(nil), starlark.None)
}

package loader

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/gangwar/types"
)

// newTestVM creates a sandboxed Lua VM with the API registered and a fresh collector.
func newTestVM() (*lua.LState, *collector) {
	return newVM()
}

func TestRequirementHelpers(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Event "x" {
			type = "money_find",
			requires = { money = AtLeast(100), health = AtMost(50), has_info = Equals(0) },
		}
	`); err != nil {
		t.Fatal(err)
	}

	catalog, err := compile(coll)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	want := map[string]types.Requirement{
		"money":    {Op: "min", Value: 100},
		"health":   {Op: "max", Value: 50},
		"has_info": {Op: "eq", Value: 0},
	}
	got := catalog[0].Requirements
	if len(got) != len(want) {
		t.Fatalf("requirements = %v", got)
	}
	for stat, req := range want {
		if got[stat] != req {
			t.Errorf("%s = %+v, want %+v", stat, got[stat], req)
		}
	}
}

func TestCompileEvent_Fields(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Event "stash" {
			title = "Stash House",
			description = "{gang} hits a stash.",
			type = "treasure_find",
			weight = 3,
			effects = { money = 5000, crack = 2, has_info = -1 },
		}
	`); err != nil {
		t.Fatal(err)
	}

	catalog, err := compile(coll)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	ev := catalog[0]
	if ev.ID != "stash" || ev.Title != "Stash House" || ev.Description != "{gang} hits a stash." {
		t.Errorf("text fields = %+v", ev)
	}
	if ev.Type != types.EventTreasureFind || ev.Weight != 3 {
		t.Errorf("type=%q weight=%d", ev.Type, ev.Weight)
	}
	if ev.Effects["money"] != 5000 || ev.Effects["crack"] != 2 || ev.Effects["has_info"] != -1 {
		t.Errorf("effects = %v", ev.Effects)
	}
	if ev.Requirements == nil {
		t.Error("requirements should be an empty map, not nil")
	}
}

func TestCompileEvent_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"string weight", `Event "x" { weight = "heavy" }`, "weight"},
		{"array effects", `Event "x" { effects = { 5 } }`, "effects keys"},
		{"string effect", `Event "x" { effects = { money = "lots" } }`, "whole number"},
		{"string requirement", `Event "x" { requires = { money = "rich" } }`, "AtLeast"},
		{"fractional requirement", `Event "x" { requires = { money = AtLeast(1.5) } }`, "whole number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L, coll := newTestVM()
			defer L.Close()
			if err := L.DoString(tt.src); err != nil {
				t.Fatal(err)
			}
			_, err := compile(coll)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestSourceOrder_AutoIncrement(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Event "a" { type = "money_find" }
		Event "b" { type = "money_find" }
		Event "c" { type = "money_find" }
	`); err != nil {
		t.Fatal(err)
	}

	for i, ev := range coll.events {
		if ev.order != i+1 {
			t.Errorf("event %q order = %d, want %d", ev.id, ev.order, i+1)
		}
	}
}

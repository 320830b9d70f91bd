package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/nathoo/gangwar/engine/events"
	"github.com/nathoo/gangwar/types"
)

// writeLua writes a single .lua file into a fresh temp dir and returns the dir.
func writeLua(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "events.lua"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func findEvent(catalog []types.RandomEvent, id string) (types.RandomEvent, bool) {
	for _, ev := range catalog {
		if ev.ID == id {
			return ev, true
		}
	}
	return types.RandomEvent{}, false
}

func TestLoad_Street(t *testing.T) {
	catalog, err := Load("testdata/street")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(catalog) != 3 {
		t.Fatalf("expected 3 events, got %d", len(catalog))
	}

	cash, ok := findEvent(catalog, "found_cash")
	if !ok {
		t.Fatal("event 'found_cash' not found")
	}
	if cash.Title != "Found Cash" || cash.Type != types.EventMoneyFind || cash.Weight != 20 {
		t.Errorf("found_cash = %+v", cash)
	}
	if cash.Effects["money"] != 250 {
		t.Errorf("money effect = %d", cash.Effects["money"])
	}
	if r := cash.Requirements["money"]; r.Op != "min" || r.Value != 100 {
		t.Errorf("money requirement = %+v", r)
	}
	if r := cash.Requirements["has_id"]; r.Op != "eq" || r.Value != 1 {
		t.Errorf("has_id requirement = %+v", r)
	}

	ambush, _ := findEvent(catalog, "ambush")
	if ambush.Weight != events.DefaultWeight {
		t.Errorf("default weight = %d, want %d", ambush.Weight, events.DefaultWeight)
	}
	if len(ambush.Effects) != 0 || len(ambush.Requirements) != 0 {
		t.Errorf("ambush should have no effects or requirements: %+v", ambush)
	}

	bench, _ := findEvent(catalog, "bench")
	if bench.Effects["health"] != 12 {
		t.Errorf("local helper value = %d, want 12", bench.Effects["health"])
	}
	if r := bench.Requirements["health"]; r.Op != "min" || r.Value != 90 {
		t.Errorf("bare number requirement = %+v", r)
	}
}

func TestLoad_FileOrdering(t *testing.T) {
	catalog, err := Load("testdata/ordered")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var ids []string
	for _, ev := range catalog {
		ids = append(ids, ev.ID)
	}
	if got := strings.Join(ids, ","); got != "first,also_first,second" {
		t.Errorf("order = %s", got)
	}
}

func TestLoad_ShippedContent(t *testing.T) {
	catalog, err := Load("../content")
	if err != nil {
		t.Fatalf("shipped content failed to load: %v", err)
	}
	seen := map[types.EventType]bool{}
	for _, ev := range catalog {
		seen[ev.Type] = true
	}
	if len(seen) != len(validEventTypes) {
		t.Errorf("shipped content covers %d event types, want %d", len(seen), len(validEventTypes))
	}
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad syntax", `Event "x" {`, "executing events.lua"},
		{"unknown type", `Event "x" { type = "picnic" }`, "unknown type"},
		{"unknown stat", `Event "x" { type = "money_find", effects = { gold = 5 } }`, "unknown stat"},
		{"unknown requirement", `Event "x" { type = "money_find", requires = { karma = AtLeast(1) } }`, "unknown stat"},
		{"fractional effect", `Event "x" { type = "money_find", effects = { money = 1.5 } }`, "whole number"},
		{"zero weight", `Event "x" { type = "money_find", weight = 0 }`, "weight must be positive"},
		{"duplicate id", `Event "x" { type = "money_find" } Event "x" { type = "money_find" }`, "duplicate event ID"},
		{"no events", `local x = 1`, "no events defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeLua(t, tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFS_SkipsOtherFilesAndSubdirs(t *testing.T) {
	fsys := fstest.MapFS{
		"b.lua":          {Data: []byte(`Event "second" { type = "money_find", effects = { money = 5 } }`)},
		"a.lua":          {Data: []byte(`Event "first" { type = "drug_find", effects = { weed = 1 } }`)},
		"README.md":      {Data: []byte("not lua")},
		"extra/more.lua": {Data: []byte(`Event "nested" { type = "money_find" }`)},
	}
	catalog, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}
	if len(catalog) != 2 || catalog[0].ID != "first" || catalog[1].ID != "second" {
		t.Errorf("catalog = %+v", catalog)
	}
}

func TestLoadFS_ErrorNamesFile(t *testing.T) {
	fsys := fstest.MapFS{"broken.lua": {Data: []byte(`Event "x" {`)}}
	_, err := LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "broken.lua") {
		t.Errorf("err = %v", err)
	}
}

func TestLoad_NoLuaFiles(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for empty directory")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoad_SandboxEnforced(t *testing.T) {
	for _, fn := range []string{`dofile("x.lua")`, `loadstring("return 1")`, `math.randomseed(1)`, `os.exit(1)`, `io.write("x")`} {
		t.Run(fn, func(t *testing.T) {
			src := fn + "\nEvent \"x\" { type = \"money_find\" }"
			if _, err := Load(writeLua(t, src)); err == nil {
				t.Errorf("%s should fail in the sandbox", fn)
			}
		})
	}
}

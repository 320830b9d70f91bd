package loader

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/gangwar/engine/events"
	"github.com/nathoo/gangwar/engine/rules"
	"github.com/nathoo/gangwar/types"
)

// rawEvent holds an event table before compilation.
type rawEvent struct {
	id    string
	table *lua.LTable
	order int
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// toInt converts a whole Lua number to an int.
func toInt(v lua.LValue) (int, bool) {
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, false
	}
	f := float64(n)
	if f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// compile converts raw Lua tables into catalog entries, in source order.
func compile(coll *collector) ([]types.RandomEvent, error) {
	raws := append([]rawEvent(nil), coll.events...)
	sort.SliceStable(raws, func(i, j int) bool { return raws[i].order < raws[j].order })

	catalog := make([]types.RandomEvent, 0, len(raws))
	for _, raw := range raws {
		ev, err := compileEvent(raw)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, ev)
	}
	return catalog, nil
}

func compileEvent(raw rawEvent) (types.RandomEvent, error) {
	ev := types.RandomEvent{
		ID:          raw.id,
		Title:       getString(raw.table, "title"),
		Description: getString(raw.table, "description"),
		Type:        types.EventType(getString(raw.table, "type")),
		Weight:      events.DefaultWeight,
	}

	if v := raw.table.RawGetString("weight"); v != lua.LNil {
		w, ok := toInt(v)
		if !ok {
			return ev, fmt.Errorf("event %q: weight must be a whole number, got %s", raw.id, v.String())
		}
		ev.Weight = w
	}

	effects, err := compileEffects(raw.id, getTable(raw.table, "effects"))
	if err != nil {
		return ev, err
	}
	ev.Effects = effects

	reqs, err := compileRequirements(raw.id, getTable(raw.table, "requires"))
	if err != nil {
		return ev, err
	}
	ev.Requirements = reqs

	return ev, nil
}

// compileEffects reads { stat = delta, ... }.
func compileEffects(id string, tbl *lua.LTable) (map[string]int, error) {
	out := map[string]int{}
	if tbl == nil {
		return out, nil
	}
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		key, ok := k.(lua.LString)
		if !ok {
			err = fmt.Errorf("event %q: effects keys must be stat names", id)
			return
		}
		n, ok := toInt(v)
		if !ok {
			err = fmt.Errorf("event %q: effect %q must be a whole number", id, string(key))
			return
		}
		out[string(key)] = n
	})
	return out, err
}

// compileRequirements reads { stat = AtLeast(n) | AtMost(n) | Equals(n) | n }.
// A bare number is shorthand for AtLeast.
func compileRequirements(id string, tbl *lua.LTable) (map[string]types.Requirement, error) {
	out := map[string]types.Requirement{}
	if tbl == nil {
		return out, nil
	}
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		key, ok := k.(lua.LString)
		if !ok {
			err = fmt.Errorf("event %q: requires keys must be stat names", id)
			return
		}
		stat := string(key)
		if n, ok := toInt(v); ok {
			out[stat] = types.Requirement{Op: rules.OpMin, Value: n}
			return
		}
		t, ok := v.(*lua.LTable)
		if !ok {
			err = fmt.Errorf("event %q: requirement %q must be a number or AtLeast/AtMost/Equals", id, stat)
			return
		}
		n, ok := toInt(t.RawGetString("value"))
		if !ok {
			err = fmt.Errorf("event %q: requirement %q needs a whole number value", id, stat)
			return
		}
		out[stat] = types.Requirement{Op: getString(t, "op"), Value: n}
	})
	return out, err
}

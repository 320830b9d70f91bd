package loader

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/gangwar/engine/rules"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerRequirementHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Event "id" { ... }, curried: Event("id") returns a function that takes a table.
	L.SetGlobal("Event", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.events = append(coll.events, rawEvent{id: id, table: tbl, order: coll.nextSourceOrder()})
			return 0
		}))
		return 1
	}))
}

func registerRequirementHelpers(L *lua.LState) {
	// AtLeast(n), AtMost(n) and Equals(n) build a requirement table
	// { op = "...", value = n } for a requires entry.
	helpers := map[string]string{
		"AtLeast": rules.OpMin,
		"AtMost":  rules.OpMax,
		"Equals":  rules.OpEq,
	}
	for name, op := range helpers {
		L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
			value := L.CheckNumber(1)
			tbl := L.NewTable()
			tbl.RawSetString("op", lua.LString(op))
			tbl.RawSetString("value", value)
			L.Push(tbl)
			return 1
		}))
	}
}

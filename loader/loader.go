// Package loader loads Lua event catalogs into Go structs at startup.
// The Lua VM is discarded after loading; nothing runs Lua during play.
package loader

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/gangwar/types"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	events []rawEvent
	order  int
}

func (c *collector) nextSourceOrder() int {
	c.order++
	return c.order
}

// Load reads every .lua file in dir. See LoadFS.
func Load(dir string) ([]types.RandomEvent, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	catalog, err := LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return catalog, nil
}

// LoadFS runs the top-level .lua files of fsys in name order, compiles the
// events they declare and validates the result. The catalog keeps source
// order.
func LoadFS(fsys fs.FS) ([]types.RandomEvent, error) {
	names, err := fs.Glob(fsys, "*.lua")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no .lua files found")
	}
	sort.Strings(names)

	L, coll := newVM()
	defer L.Close()

	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if err := run(L, name, src); err != nil {
			return nil, fmt.Errorf("executing %s: %w", name, err)
		}
	}

	catalog, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling events: %w", err)
	}
	if err := validate(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// newVM returns a sandboxed state with the catalog API installed.
func newVM() (*lua.LState, *collector) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)
	return L, coll
}

// run executes one chunk under its file name so Lua errors point at it.
func run(L *lua.LState, name string, src []byte) error {
	fn, err := L.Load(bytes.NewReader(src), name)
	if err != nil {
		return err
	}
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

// openSafeLibs opens base, table, string and math. No io, os or package.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox strips the base functions that reach outside the catalog.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	} {
		L.SetGlobal(name, lua.LNil)
	}

	// Catalogs must not reseed; event odds come from the game RNG.
	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("randomseed", lua.LNil)
	}
}

package api

import (
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keybind/internal/keymap"
)

// KeymapModule implements the _kb_keymap Lua API module.
type KeymapModule struct {
	ctx        *Context
	pluginName string
}

// NewKeymapModule creates a new keymap module for a named plugin.
func NewKeymapModule(ctx *Context, pluginName string) *KeymapModule {
	return &KeymapModule{ctx: ctx, pluginName: pluginName}
}

// Name returns the module name.
func (m *KeymapModule) Name() string {
	return "keymap"
}

// Register registers the module into the Lua state.
func (m *KeymapModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "set", L.NewFunction(m.set))
	L.SetField(mod, "del", L.NewFunction(m.del))
	L.SetField(mod, "get", L.NewFunction(m.get))
	L.SetField(mod, "list", L.NewFunction(m.list))

	L.SetGlobal("_kb_keymap", mod)
	return nil
}

// set(id, keys, handler) -> nil
// Installs a binding. handler is a command id string or a Lua function
// receiving the editor handle. An unqualified id is namespaced under
// the plugin name.
func (m *KeymapModule) set(L *lua.LState) int {
	id := L.CheckString(1)
	keys := L.CheckString(2)
	hval := L.CheckAny(3)

	if id == "" {
		L.ArgError(1, "id cannot be empty")
		return 0
	}
	if keys == "" {
		L.ArgError(2, "keys cannot be empty")
		return 0
	}
	if m.ctx.Keymap == nil {
		L.RaiseError("set: no keymap provider available")
		return 0
	}

	h, ok := m.handlerFrom(L, hval)
	if !ok {
		L.ArgError(3, "handler must be a command id or a function")
		return 0
	}

	if _, err := m.ctx.Keymap.Add(m.qualify(id), keys, h); err != nil {
		L.RaiseError("set: %v", err)
		return 0
	}
	return 0
}

// del(id) -> bool
// Removes a binding. Returns whether a binding existed.
func (m *KeymapModule) del(L *lua.LState) int {
	id := L.CheckString(1)

	if m.ctx.Keymap == nil {
		L.Push(lua.LFalse)
		return 1
	}

	_, ok := m.ctx.Keymap.Remove(m.qualify(id))
	L.Push(lua.LBool(ok))
	return 1
}

// get(id) -> table or nil
func (m *KeymapModule) get(L *lua.LState) int {
	id := L.CheckString(1)

	if m.ctx.Keymap == nil {
		L.Push(lua.LNil)
		return 1
	}

	b, ok := m.ctx.Keymap.Get(m.qualify(id))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}

	L.Push(m.bindingTable(L, b))
	return 1
}

// list() -> {bindings...}
// Lists all active bindings, sorted by id.
func (m *KeymapModule) list(L *lua.LState) int {
	result := L.NewTable()
	if m.ctx.Keymap == nil {
		L.Push(result)
		return 1
	}

	all := m.ctx.Keymap.GetAll()
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for i, id := range ids {
		result.RawSetInt(i+1, m.bindingTable(L, all[id]))
	}

	L.Push(result)
	return 1
}

// qualify namespaces an unqualified id under the plugin name.
func (m *KeymapModule) qualify(id string) string {
	if m.pluginName == "" || strings.Contains(id, ":") {
		return id
	}
	return m.pluginName + ":" + id
}

// handlerFrom coerces a Lua value into a binding handler.
func (m *KeymapModule) handlerFrom(L *lua.LState, v lua.LValue) (keymap.Handler, bool) {
	switch hv := v.(type) {
	case lua.LString:
		if hv == "" {
			return keymap.Handler{}, false
		}
		return keymap.Command(string(hv)), true
	case *lua.LFunction:
		return keymap.Callback(func(ed keymap.Editor) error {
			L.Push(hv)
			ud := L.NewUserData()
			ud.Value = ed
			L.Push(ud)
			return L.PCall(1, 0, nil)
		}), true
	}
	return keymap.Handler{}, false
}

func (m *KeymapModule) bindingTable(L *lua.LState, b *keymap.Binding) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "id", lua.LString(b.ID))
	L.SetField(tbl, "keys", lua.LString(b.Keys))
	L.SetField(tbl, "handler", lua.LString(b.Handler.String()))
	return tbl
}

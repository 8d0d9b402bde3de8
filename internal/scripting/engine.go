package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/breachpoint/server/internal/match"
)

// Engine wraps a single gopher-lua VM for objective logic.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all objective scripts from
// the given directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load objective scripts: %w", err)
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Objective builds a match.Objective backed by the loaded scripts.
// kind selects the script-side handler; data is passed through to Lua
// untouched.
func (e *Engine) Objective(id, kind string, data map[string]any) *LuaObjective {
	return &LuaObjective{engine: e, id: id, kind: kind, data: data}
}

// LuaObjective dispatches objective lifecycle calls into the Lua VM.
// Scripts keep per-objective state keyed by the objective id.
type LuaObjective struct {
	engine *Engine
	id     string
	kind   string
	data   map[string]any
}

var _ match.Objective = (*LuaObjective)(nil)

func (o *LuaObjective) ID() string { return o.id }

func (o *LuaObjective) Init(g match.Game) {
	o.callVoid("objective_init", g)
}

func (o *LuaObjective) Reset(g match.Game) {
	o.callVoid("objective_reset", g)
}

func (o *LuaObjective) IsCompleted(g match.Game) bool {
	return o.callBool("objective_is_completed", g)
}

func (o *LuaObjective) IsInProgress(g match.Game) bool {
	return o.callBool("objective_is_in_progress", g)
}

// Trigger invokes a kind-specific host hook; action "plant" on a
// bomb_site objective dispatches to bomb_site_plant.
func (o *LuaObjective) Trigger(action string, g match.Game) {
	o.callVoid(o.kind+"_"+action, g)
}

// buildContext packs the objective and a player roster snapshot into a
// Lua table.
func (o *LuaObjective) buildContext(g match.Game) *lua.LTable {
	vm := o.engine.vm

	t := vm.NewTable()
	t.RawSetString("id", lua.LString(o.id))
	t.RawSetString("kind", lua.LString(o.kind))

	d := vm.NewTable()
	for k, v := range o.data {
		d.RawSetString(k, toLValue(v))
	}
	t.RawSetString("data", d)

	players := vm.NewTable()
	i := 0
	for _, p := range g.Players() {
		if p == nil {
			continue
		}
		row := vm.NewTable()
		row.RawSetString("id", lua.LNumber(p.ID()))
		row.RawSetString("dead", lua.LBool(p.IsDead()))
		row.RawSetString("spectator", lua.LBool(p.IsPureSpectator()))
		i++
		players.RawSetInt(i, row)
	}
	t.RawSetString("players", players)

	return t
}

func (o *LuaObjective) callVoid(name string, g match.Game) {
	vm := o.engine.vm
	fn := vm.GetGlobal(name)
	if fn == lua.LNil {
		o.engine.log.Error("lua function not found", zap.String("name", name))
		return
	}

	if err := vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, o.buildContext(g)); err != nil {
		o.engine.log.Error("lua objective call error",
			zap.String("func", name),
			zap.String("objective", o.id),
			zap.Error(err))
	}
}

func (o *LuaObjective) callBool(name string, g match.Game) bool {
	vm := o.engine.vm
	fn := vm.GetGlobal(name)
	if fn == lua.LNil {
		o.engine.log.Error("lua function not found", zap.String("name", name))
		return false
	}

	if err := vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, o.buildContext(g)); err != nil {
		o.engine.log.Error("lua objective call error",
			zap.String("func", name),
			zap.String("objective", o.id),
			zap.Error(err))
		return false
	}

	result := vm.Get(-1)
	vm.Pop(1)
	return result == lua.LTrue
}

// toLValue converts a decoded YAML scalar into a Lua value.
func toLValue(v any) lua.LValue {
	switch x := v.(type) {
	case bool:
		return lua.LBool(x)
	case int:
		return lua.LNumber(x)
	case int64:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	case string:
		return lua.LString(x)
	default:
		return lua.LNil
	}
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

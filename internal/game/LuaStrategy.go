package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"
)

const (
	luaEntryPoint              = "nextDirection"
	maxStrategyCalculationTime = 50 * time.Millisecond
)

var errNoEntryPoint = errors.New("lua strategy does not define " + luaEntryPoint)

// DefaultLuaStrategy walks toward the food using only the moves the engine
// reports as safe.
const DefaultLuaStrategy = `
function nextDirection(state)
	local head, food = state.head, state.food
	local wanted = {}
	if food.x > head.x then table.insert(wanted, "RIGHT") end
	if food.x < head.x then table.insert(wanted, "LEFT") end
	if food.y > head.y then table.insert(wanted, "DOWN") end
	if food.y < head.y then table.insert(wanted, "UP") end

	for _, w in ipairs(wanted) do
		for _, s in ipairs(state.safe) do
			if w == s then return w end
		end
	end
	if #state.safe > 0 then return state.safe[1] end
	return state.direction
end
`

// LuaStrategy calls a script's nextDirection(state) before every tick. The
// state table carries head, food, body, direction, score, grid and safe.
// The script answers with a direction name or a {Dx=, Dy=} table.
type LuaStrategy struct {
	Name     string
	GridSize int

	mu    sync.Mutex
	state *lua.LState
}

func NewLuaStrategy(name, source string, gridSize int) (*LuaStrategy, error) {
	luaState := lua.NewState()
	if err := luaState.DoString(source); err != nil {
		luaState.Close()
		return nil, fmt.Errorf("could not parse lua strategy %s: %w", name, err)
	}
	return newLuaStrategy(name, luaState, gridSize)
}

func NewLuaStrategyFromFile(path string, gridSize int) (*LuaStrategy, error) {
	luaState := lua.NewState()
	if err := luaState.DoFile(path); err != nil {
		luaState.Close()
		return nil, fmt.Errorf("could not load lua strategy %s: %w", path, err)
	}
	return newLuaStrategy(path, luaState, gridSize)
}

func newLuaStrategy(name string, luaState *lua.LState, gridSize int) (*LuaStrategy, error) {
	if luaState.GetGlobal(luaEntryPoint).Type() != lua.LTFunction {
		luaState.Close()
		return nil, fmt.Errorf("%s: %w", name, errNoEntryPoint)
	}
	return &LuaStrategy{Name: name, GridSize: gridSize, state: luaState}, nil
}

func (ls *LuaStrategy) NextDirection(s GameState) Direction {
	dir, err := ls.evaluate(s)
	if err != nil {
		log.Warn("Lua strategy failed, keeping direction", "strategy", ls.Name, "error", err)
		return s.Direction
	}
	return dir
}

func (ls *LuaStrategy) evaluate(s GameState) (Direction, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), maxStrategyCalculationTime)
	defer cancel()
	ls.state.SetContext(ctx)
	defer ls.state.RemoveContext()

	err := ls.state.CallByParam(lua.P{
		Fn:      ls.state.GetGlobal(luaEntryPoint),
		NRet:    1,
		Protect: true,
	}, ls.stateTable(s))
	if err != nil {
		return s.Direction, fmt.Errorf("could not execute lua strategy: %w", err)
	}

	ret := ls.state.Get(-1)
	ls.state.Pop(1)

	switch value := ret.(type) {
	case lua.LString:
		return ParseDirection(string(value))
	case *lua.LTable:
		return convertLuaDirectionTable(value)
	}
	return s.Direction, fmt.Errorf("lua return value was type %s, expected string or table", ret.Type())
}

func (ls *LuaStrategy) stateTable(s GameState) *lua.LTable {
	L := ls.state
	tbl := L.NewTable()
	tbl.RawSetString("head", positionTable(L, s.Head()))
	tbl.RawSetString("food", positionTable(L, s.Food))
	tbl.RawSetString("direction", lua.LString(s.Direction.String()))
	tbl.RawSetString("score", lua.LNumber(s.Score))
	tbl.RawSetString("grid", lua.LNumber(ls.GridSize))

	body := L.NewTable()
	for _, segment := range s.Snake {
		body.Append(positionTable(L, segment))
	}
	tbl.RawSetString("body", body)

	safe := L.NewTable()
	for _, m := range safeMoves(s, ls.GridSize) {
		safe.Append(lua.LString(m.Direction.String()))
	}
	tbl.RawSetString("safe", safe)
	return tbl
}

func positionTable(L *lua.LState, p Position) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("x", lua.LNumber(p.X))
	tbl.RawSetString("y", lua.LNumber(p.Y))
	return tbl
}

func convertLuaDirectionTable(luaTbl *lua.LTable) (Direction, error) {
	dx, dy := 0, 0
	luaTbl.ForEach(func(key, value lua.LValue) {
		if key.Type() != lua.LTString {
			return
		}
		switch lua.LVAsString(key) {
		case "Dx":
			dx = int(lua.LVAsNumber(value))
		case "Dy":
			dy = int(lua.LVAsNumber(value))
		}
	})
	return DirectionFromDelta(dx, dy)
}

// Close releases the Lua interpreter.
func (ls *LuaStrategy) Close() error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.state.Close()
	return nil
}

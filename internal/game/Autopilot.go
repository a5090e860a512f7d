package game

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

const (
	BuiltinStrategyName = "builtin"
	strategyFunction    = "next_direction"
)

// builtinStrategy heads for the food along the shortest free step, never
// reversing and never stepping onto a wall or its own body.
const builtinStrategy = `
local moves = {
	{dx = 0, dy = -1},
	{dx = 0, dy = 1},
	{dx = -1, dy = 0},
	{dx = 1, dy = 0},
}

local function blocked(state, x, y)
	if x <= 0 or y <= 0 or x >= state.width or y >= state.height then
		return true
	end
	-- the last segment moves away this tick
	for i = 1, #state.body - 1 do
		local segment = state.body[i]
		if segment.x == x and segment.y == y then
			return true
		end
	end
	return false
end

function next_direction(state)
	local best = state.direction
	local bestDistance = math.huge
	for _, move in ipairs(moves) do
		local reverse = move.dx == -state.direction.dx and move.dy == -state.direction.dy
		local x, y = state.head.x + move.dx, state.head.y + move.dy
		if not reverse and not blocked(state, x, y) then
			local distance = math.abs(state.food.x - x) + math.abs(state.food.y - y)
			if distance < bestDistance then
				best = move
				bestDistance = distance
			end
		end
	end
	return {dx = best.dx, dy = best.dy}
end
`

// Autopilot steers with a Lua function next_direction(state) that returns
// a {dx, dy} table. It is not safe for concurrent use.
type Autopilot struct {
	name  string
	state *lua.LState
}

func NewAutopilot(name, source string) (*Autopilot, error) {
	return loadAutopilot(name, func(luaState *lua.LState) error {
		return luaState.DoString(source)
	})
}

// LoadAutopilot loads the builtin strategy or a Lua file at path.
func LoadAutopilot(path string) (*Autopilot, error) {
	if path == BuiltinStrategyName {
		return NewAutopilot(BuiltinStrategyName, builtinStrategy)
	}
	return loadAutopilot(path, func(luaState *lua.LState) error {
		return luaState.DoFile(path)
	})
}

func loadAutopilot(name string, load func(*lua.LState) error) (*Autopilot, error) {
	luaState := lua.NewState()
	if err := load(luaState); err != nil {
		luaState.Close()
		return nil, fmt.Errorf("could not load strategy %s: %w", name, err)
	}
	if luaState.GetGlobal(strategyFunction).Type() != lua.LTFunction {
		luaState.Close()
		return nil, fmt.Errorf("strategy %s does not define %s", name, strategyFunction)
	}
	return &Autopilot{name: name, state: luaState}, nil
}

func (a *Autopilot) Name() string {
	return a.name
}

func (a *Autopilot) Close() {
	a.state.Close()
}

func (a *Autopilot) Steer(g *Game) (Direction, error) {
	luaState := a.state
	err := luaState.CallByParam(lua.P{
		Fn:      luaState.GetGlobal(strategyFunction),
		NRet:    1,
		Protect: true,
	}, a.stateTable(g))
	if err != nil {
		return g.Snake.Direction, fmt.Errorf("could not execute strategy %s: %w", a.name, err)
	}

	luaReturn := luaState.Get(-1)
	luaState.Pop(1)

	luaTable, ok := luaReturn.(*lua.LTable)
	if !ok {
		return g.Snake.Direction, fmt.Errorf("strategy %s returned %s, expected table", a.name, luaReturn.Type().String())
	}

	dir := convertLuaDirectionTable(luaTable)
	if !dir.Valid() {
		return g.Snake.Direction, errors.New("strategy " + a.name + " returned an invalid direction")
	}
	return dir, nil
}

func (a *Autopilot) stateTable(g *Game) *lua.LTable {
	luaState := a.state

	body := luaState.NewTable()
	for _, segment := range g.Snake.Body {
		body.Append(a.positionTable(segment))
	}

	direction := luaState.NewTable()
	direction.RawSetString("dx", lua.LNumber(g.Snake.Direction.Dx))
	direction.RawSetString("dy", lua.LNumber(g.Snake.Direction.Dy))

	state := luaState.NewTable()
	state.RawSetString("head", a.positionTable(g.Snake.Head()))
	state.RawSetString("food", a.positionTable(g.Food))
	state.RawSetString("direction", direction)
	state.RawSetString("body", body)
	state.RawSetString("width", lua.LNumber(g.Board.Width))
	state.RawSetString("height", lua.LNumber(g.Board.Height))
	return state
}

func (a *Autopilot) positionTable(p Position) *lua.LTable {
	table := a.state.NewTable()
	table.RawSetString("x", lua.LNumber(p.X))
	table.RawSetString("y", lua.LNumber(p.Y))
	return table
}

func convertLuaDirectionTable(luaTbl *lua.LTable) Direction {
	result := Direction{}
	luaTbl.ForEach(func(key, value lua.LValue) {
		if key.Type() != lua.LTString {
			return
		}

		switch lua.LVAsString(key) {
		case "dx":
			result.Dx = int(lua.LVAsNumber(value))
		case "dy":
			result.Dy = int(lua.LVAsNumber(value))
		}
	})
	return result
}

package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// GameState is one position of the blocking game. Every agent steps onto a free neighbouring cell
// on its turn and the cell it leaves stays blocked, so the number of free cells strictly decreases
// and every line of play is finite.
type GameState struct {
	Map       *Map   // Reference to the static game map
	Blocked   []bool // Cells left behind by agents, indexed by cell ID
	Positions []int  // Current cell per agent ID
}

// NewGameState places every agent on its starting cell.
func NewGameState(m *Map) *GameState {
	positions := make([]int, len(m.Starts))
	copy(positions, m.Starts)
	return &GameState{
		Map:       m,
		Blocked:   make([]bool, len(m.Walls)),
		Positions: positions,
	}
}

// Copy returns a deep copy of the GameState.
func (gs *GameState) Copy() *GameState {
	blocked := make([]bool, len(gs.Blocked))
	copy(blocked, gs.Blocked)
	positions := make([]int, len(gs.Positions))
	copy(positions, gs.Positions)

	return &GameState{
		Map:       gs.Map, // Map is never modified after parsing
		Blocked:   blocked,
		Positions: positions,
	}
}

// NumAgents returns the number of agents on the board.
func (gs *GameState) NumAgents() int {
	return len(gs.Positions)
}

// LegalActions returns the directions agent can step in, in North, East, South, West order.
// An agent that is not on the board has no legal actions.
func (gs *GameState) LegalActions(agent AgentID) []Action {
	if agent < 0 || int(agent) >= len(gs.Positions) {
		return nil
	}

	var actions []Action
	for _, d := range Directions {
		if gs.isOpen(agent, d) {
			actions = append(actions, d)
		}
	}
	return actions
}

func (gs *GameState) isOpen(agent AgentID, d Direction) bool {
	next, ok := gs.Map.Neighbor(gs.Positions[agent], d)
	if !ok || gs.Blocked[next] {
		return false
	}
	return !slices.Contains(gs.Positions, next)
}

// Apply moves agent one step and blocks the cell it left. The receiver is left untouched.
func (gs *GameState) Apply(agent AgentID, action Action) State {
	d, ok := action.(Direction)
	if !ok {
		panic(fmt.Sprintf("unexpected action type %T", action))
	}
	if agent < 0 || int(agent) >= len(gs.Positions) || !gs.isOpen(agent, d) {
		panic(fmt.Sprintf("illegal action %s for agent %d", d, agent))
	}

	next := gs.Copy()
	from := gs.Positions[agent]
	to, _ := gs.Map.Neighbor(from, d)
	next.Blocked[from] = true
	next.Positions[agent] = to
	return next
}

// String renders the board in the layout accepted by ParseMap, with blocked cells drawn as 'x'.
func (gs *GameState) String() string {
	var sb strings.Builder
	for row := 0; row < gs.Map.Rows; row++ {
		for col := 0; col < gs.Map.Cols; col++ {
			cell := gs.Map.CellID(row, col)
			if agent := slices.Index(gs.Positions, cell); agent >= 0 {
				sb.WriteByte(byte('0' + agent))
				continue
			}
			switch {
			case gs.Map.Walls[cell]:
				sb.WriteByte(wallCell)
			case gs.Blocked[cell]:
				sb.WriteByte('x')
			default:
				sb.WriteByte(freeCell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package searcher

import "gamesearch/game"

type mockAction string

// mockState is a hand built game tree. Children are keyed by action, so actions are unique within a state.
type mockState struct {
	actions  map[game.AgentID][]game.Action
	children map[game.Action]*mockState
	applied  *int
}

func (m *mockState) LegalActions(agent game.AgentID) []game.Action {
	return m.actions[agent]
}

func (m *mockState) Apply(agent game.AgentID, action game.Action) game.State {
	if m.applied != nil {
		*m.applied++
	}
	child, ok := m.children[action]
	if !ok {
		return &mockState{applied: m.applied}
	}
	return child
}

// countApplies makes every state of the tree report transitions to counter.
func countApplies(root *mockState, counter *int) {
	root.applied = counter
	for _, child := range root.children {
		countApplies(child, counter)
	}
}

type edge struct {
	action mockAction
	child  *mockState
}

// branch is a state where agent chooses among edges in order and every agent in others can still move.
func branch(agent game.AgentID, others []game.AgentID, edges ...edge) *mockState {
	state := &mockState{
		actions:  map[game.AgentID][]game.Action{},
		children: map[game.Action]*mockState{},
	}
	for _, e := range edges {
		state.actions[agent] = append(state.actions[agent], e.action)
		state.children[e.action] = e.child
	}
	for _, other := range others {
		state.actions[other] = []game.Action{mockAction("pass")}
	}
	return state
}

// won is a position where self can still move and every opponent is stuck.
func won() *mockState {
	return &mockState{actions: map[game.AgentID][]game.Action{
		game.Self: {mockAction("idle")},
	}}
}

// lost is a position where self is stuck.
func lost() *mockState {
	return &mockState{actions: map[game.AgentID][]game.Action{
		1: {mockAction("idle")},
	}}
}

var searchers = []func(...Option) Searcher{
	func(o ...Option) Searcher { return NewMinimax(o...) },
	func(o ...Option) Searcher { return NewAlphaBeta(o...) },
	func(o ...Option) Searcher { return NewExpectimax(o...) },
	func(o ...Option) Searcher { return NewMaxN(append([]Option{WithPlayers(2)}, o...)...) },
}

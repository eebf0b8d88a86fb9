package game

// AgentID identifies an agent taking turns in a game. Self (0) is reserved for the
// primary decision-making agent; opponents are numbered from 1 by the caller.
type AgentID int

const Self AgentID = 0

// Action is an opaque move. Implementations must be comparable with ==.
type Action interface{}

// State should be immutable - operations on State always return a new copy
type State interface {
	// LegalActions returns the ordered actions available to agent, empty if it is stuck
	LegalActions(agent AgentID) []Action
	// Apply returns the state after agent plays action, without modifying the receiver
	Apply(agent AgentID, action Action) State
}

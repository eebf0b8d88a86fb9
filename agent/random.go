package agent

import (
	"fmt"
	"gamesearch/game"
	"gamesearch/searcher"

	"golang.org/x/exp/rand"
)

// Random is the baseline agent: it ignores the budget and plays a uniformly random legal action.
type Random struct {
	id  game.AgentID
	rng *rand.Rand
}

// NewRandom creates a random agent drawing from rng, so games can be replayed from a seed.
func NewRandom(id game.AgentID, rng *rand.Rand) *Random {
	return &Random{id: id, rng: rng}
}

func (r *Random) ID() game.AgentID { return r.id }
func (r *Random) Name() string     { return fmt.Sprintf("random-%d", r.id) }

func (r *Random) DecideNextAction(state game.State, maxLevels searcher.Depth) (game.Action, error) {
	actions, err := checkTurn(r.id, state, maxLevels)
	if err != nil {
		return nil, err
	}
	return actions[r.rng.Intn(len(actions))], nil
}

package game

import "math/rand"

// AIPlayer replies synchronously: one-ply selection over a 15x15 board is
// sub-millisecond, so there is no background thinking state to manage.
type AIPlayer struct {
	rng *rand.Rand
}

// NewAIPlayer builds an AI player. A nil rng means non-reproducible
// tie-breaking; pass a seeded source for deterministic play.
func NewAIPlayer(rng *rand.Rand) *AIPlayer {
	return &AIPlayer{rng: rng}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) ChooseMove(state GameState, config Config) (Move, bool) {
	return SelectMove(state, state.ToMove, config, a.rng)
}

package game

import (
	"math"
	"math/rand"
	"time"
)

// SelectMove picks a move for side using one-ply scoring: every candidate is
// scored as an attack for side and as a defense against the opponent, and the
// highest combined score wins. There is no lookahead.
//
// Selection rules, in order:
//   - a candidate whose attack reaches the five tier is taken immediately;
//   - defense reaching the open-four tier adds BlockOpenFourBonus, defense
//     reaching the closed-four tier adds BlockClosedFourBonus;
//   - a center bonus decays with Manhattan distance from the board center;
//   - a bounded random jitter is added, and score ties are resolved uniformly
//     at random. Inject a seeded rng (and JitterMax 0) for determinism.
//
// The second return is false when no candidate exists (full board).
func SelectMove(state GameState, side PlayerColor, config Config, rng *rand.Rand) (Move, bool) {
	board := state.Board.Clone()
	weights := resolveHeuristics(config)
	candidates := Candidates(board, config.CandidateRadius)
	if len(candidates) == 0 {
		return Move{}, false
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	myCell := CellFromPlayer(side)
	oppCell := CellFromPlayer(OtherPlayer(side))
	center := board.Size() / 2

	best := math.Inf(-1)
	bestMoves := []Move{}
	for _, move := range candidates {
		attack := ScorePoint(&board, move, myCell, weights)
		if attack >= weights.Five {
			// One-move win: nothing can outrank it.
			return move, true
		}
		defend := ScorePoint(&board, move, oppCell, weights)

		total := attack + defend
		if defend >= weights.Open4 {
			total += config.BlockOpenFourBonus
		} else if defend >= weights.Closed4 {
			total += config.BlockClosedFourBonus
		}

		dist := manhattanDist(move.X-center, move.Y-center)
		if bonus := float64(config.CenterBiasReach-dist) * config.CenterBias; bonus > 0 {
			total += bonus
		}
		if config.JitterMax > 0 {
			total += rng.Float64() * config.JitterMax
		}

		if total > best {
			best = total
			bestMoves = append(bestMoves[:0], move)
		} else if total == best {
			bestMoves = append(bestMoves, move)
		}
	}
	return bestMoves[rng.Intn(len(bestMoves))], true
}

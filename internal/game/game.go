package game

import (
	"math/rand"
	"time"
)

// Game owns all mutable state of one session: board, history, players. There
// are no package-level sessions, so independent games can run in one process.
type Game struct {
	settings    GameSettings
	config      Config
	rules       Rules
	state       GameState
	history     MoveHistory
	blackPlayer IPlayer
	whitePlayer IPlayer
	rng         *rand.Rand
	turnStart   time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{config: DefaultConfig()}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

// SetRng injects the random source used by AI players; nil keeps the
// non-reproducible default.
func (g *Game) SetRng(rng *rand.Rand) {
	g.rng = rng
	g.createPlayers()
}

func (g *Game) SetConfig(config Config) {
	g.config = config
}

func (g *Game) Config() Config {
	return g.config
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) HistoryLen() int {
	return g.history.Size()
}

func (g *Game) IsCellEmpty(x, y int) bool {
	return g.state.Board.IsEmpty(x, y)
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// TryApplyMove commits a move for the side to move: legality check,
// placement, history push, then win/draw detection on the placed stone.
func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	ok, reason := g.rules.IsLegal(g.state, move)
	if !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	g.state.LastMessage = ""
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	player := g.state.ToMove
	isAiMove := !g.playerForColor(player).IsHuman()
	cell := CellFromPlayer(player)
	g.state.Board.Set(move.X, move.Y, cell)
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.WinningLine = nil
	g.history.Push(HistoryEntry{Move: move, Player: player, ElapsedMs: elapsedMs, IsAi: isAiMove})

	if g.rules.IsWin(g.state.Board, move) {
		if line, ok := g.rules.FindAlignmentLine(g.state.Board, move); ok {
			g.state.WinningLine = line
		}
		if player == PlayerBlack {
			g.state.Status = StatusBlackWon
		} else {
			g.state.Status = StatusWhiteWon
		}
		UpdateHashAfterMove(&g.state, move, player, player)
		return true, ""
	}
	if g.rules.IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		UpdateHashAfterMove(&g.state, move, player, player)
		return true, ""
	}

	g.state.ToMove = otherPlayer(player)
	UpdateHashAfterMove(&g.state, move, player, player)
	g.turnStart = time.Now()
	return true, ""
}

// UndoLast reverts the most recent move. The popped entry is returned so the
// caller can revert its own turn bookkeeping; ErrEmptyHistory means there was
// nothing to undo.
func (g *Game) UndoLast() (HistoryEntry, error) {
	entry, ok := g.history.Pop()
	if !ok {
		return HistoryEntry{}, ErrEmptyHistory
	}
	g.state.Board.Remove(entry.Move.X, entry.Move.Y)
	g.state.ToMove = entry.Player
	g.state.Status = StatusRunning
	g.state.WinningLine = nil
	g.state.LastMessage = ""
	if last, ok := g.history.Last(); ok {
		g.state.LastMove = last.Move
		g.state.HasLastMove = true
	} else {
		g.state.LastMove = Move{X: -1, Y: -1}
		g.state.HasLastMove = false
	}
	g.state.Hash = ComputeHash(g.state)
	g.turnStart = time.Now()
	return entry, nil
}

// UndoForHuman implements the player-facing undo: when the last move is an AI
// reply the human move under it is removed too, so one undo always hands the
// turn back to the human. Returns how many moves were reverted.
func (g *Game) UndoForHuman() int {
	entry, err := g.UndoLast()
	if err != nil {
		return 0
	}
	undone := 1
	if entry.IsAi && g.history.Size() > 0 {
		if _, err := g.UndoLast(); err == nil {
			undone++
		}
	}
	return undone
}

// AISelectMove picks a move for side without mutating the session.
// ErrNoMove means no candidate exists (full board: draw).
func (g *Game) AISelectMove(side PlayerColor) (Move, error) {
	move, ok := SelectMove(g.state.Clone(), side, g.config, g.rng)
	if !ok {
		return Move{}, ErrNoMove
	}
	return move, nil
}

// Tick advances an AI turn or a pending human move; returns whether a move
// was applied.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			applied, _ := g.TryApplyMove(human.TakePendingMove())
			return applied
		}
		return false
	}
	move, ok := player.ChooseMove(g.state.Clone(), g.config)
	if !ok {
		// Full board with no winner.
		g.state.Status = StatusDraw
		return false
	}
	applied, _ := g.TryApplyMove(move)
	return applied
}

// SubmitHumanMove stages a move on the human side to move; the next Tick
// commits it. False when the game is not running or an AI is to move.
func (g *Game) SubmitHumanMove(move Move) bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AIEnabled() bool {
	return g.settings.BlackType == PlayerAI || g.settings.WhiteType == PlayerAI
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) createPlayers() {
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = NewHumanPlayer()
	} else {
		g.blackPlayer = NewAIPlayer(g.rng)
	}
	if g.settings.WhiteType == PlayerHuman {
		g.whitePlayer = NewHumanPlayer()
	} else {
		g.whitePlayer = NewAIPlayer(g.rng)
	}
}

package server

import (
	"sync"

	"gobang/internal/game"
)

// GameController serializes access to one game session for the HTTP handlers,
// the WebSocket hub, and the tick loop.
type GameController struct {
	mu          sync.Mutex
	game        game.Game
	configStore *game.ConfigStore
}

func NewGameController(settings game.GameSettings) *GameController {
	gc := &GameController{
		game:        game.NewGame(settings),
		configStore: game.NewConfigStore(),
	}
	gc.game.SetConfig(gc.configStore.Get())
	return gc
}

// ApplyHumanMove stages the move on the human player and commits it with an
// immediate tick, so the caller gets the result without waiting for the loop.
func (gc *GameController) ApplyHumanMove(move game.Move) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if !gc.game.SubmitHumanMove(move) {
		return false, "not human turn"
	}
	if !gc.game.Tick() {
		reason := gc.game.State().LastMessage
		if reason == "" {
			reason = "game not running"
		}
		return false, reason
	}
	return true, ""
}

func (gc *GameController) Undo() int {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.UndoForHuman()
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Tick()
}

func (gc *GameController) State() game.GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() game.GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings()
}

func (gc *GameController) Config() game.Config {
	return gc.configStore.Get()
}

func (gc *GameController) UpdateConfig(config game.Config) {
	gc.configStore.Update(config)
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.SetConfig(config)
}

func (gc *GameController) History() game.MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) LatestHistoryEntry() (game.HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	history := gc.game.History()
	return history.Last()
}

func (gc *GameController) CurrentTurnStartedAtMs() int64 {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TurnStartedAtMs()
}

// Reset swaps in a fresh session; tuning from the config store carries over.
func (gc *GameController) Reset(settings game.GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.SetConfig(gc.configStore.Get())
}

func (gc *GameController) StartGame(settings game.GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.SetConfig(gc.configStore.Get())
	gc.game.Start()
}

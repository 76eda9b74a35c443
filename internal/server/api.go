package server

import (
	"encoding/json"
	"net/http"

	"gobang/internal/game"
)

type StatusResponse struct {
	Settings        GameSettingsDTO   `json:"settings"`
	Config          game.Config       `json:"config"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	BoardSize       int               `json:"board_size"`
	Status          string            `json:"status"`
	History         []historyEntryDTO `json:"history"`
	WinningLine     []game.Move       `json:"winning_line"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	Mode        string `json:"mode"`
	HumanPlayer int    `json:"human_player"`
	BoardSize   int    `json:"board_size,omitempty"`
}

type historyEntryDTO struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Player    int     `json:"player"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsAi      bool    `json:"is_ai"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type undoPayload struct {
	Undone  int               `json:"undone"`
	History []historyEntryDTO `json:"history"`
}

type resetPayload struct {
	History         []historyEntryDTO `json:"history"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	Status          string            `json:"status"`
	BoardSize       int               `json:"board_size"`
	WinningLine     []game.Move       `json:"winning_line"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

func ControllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	settings := controller.Settings()
	return StatusResponse{
		Settings:        SettingsToDTO(settings),
		Config:          controller.Config(),
		NextPlayer:      playerToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		BoardSize:       state.Board.Size(),
		Status:          statusToString(state.Status),
		History:         historyToDTO(controller.History()),
		WinningLine:     append([]game.Move(nil), state.WinningLine...),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func ResetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		History:         historyToDTO(controller.History()),
		NextPlayer:      playerToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		BoardSize:       state.Board.Size(),
		WinningLine:     append([]game.Move(nil), state.WinningLine...),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func SettingsFromDTO(dto GameSettingsDTO, base game.GameSettings) game.GameSettings {
	settings := base
	switch dto.Mode {
	case "ai_vs_ai":
		settings.BlackType = game.PlayerAI
		settings.WhiteType = game.PlayerAI
	case "human_vs_human":
		settings.BlackType = game.PlayerHuman
		settings.WhiteType = game.PlayerHuman
	case "ai_vs_human":
		if dto.HumanPlayer == 2 {
			settings.BlackType = game.PlayerAI
			settings.WhiteType = game.PlayerHuman
		} else {
			settings.BlackType = game.PlayerHuman
			settings.WhiteType = game.PlayerAI
		}
	}
	return settings
}

func SettingsToDTO(settings game.GameSettings) GameSettingsDTO {
	mode := "ai_vs_human"
	if settings.BlackType == game.PlayerAI && settings.WhiteType == game.PlayerAI {
		mode = "ai_vs_ai"
	} else if settings.BlackType == game.PlayerHuman && settings.WhiteType == game.PlayerHuman {
		mode = "human_vs_human"
	}
	humanPlayer := 0
	if settings.BlackType == game.PlayerHuman && settings.WhiteType != game.PlayerHuman {
		humanPlayer = 1
	} else if settings.WhiteType == game.PlayerHuman && settings.BlackType != game.PlayerHuman {
		humanPlayer = 2
	} else if settings.BlackType == game.PlayerHuman {
		humanPlayer = 1
	}
	return GameSettingsDTO{Mode: mode, HumanPlayer: humanPlayer, BoardSize: settings.BoardSize}
}

func playerToInt(player game.PlayerColor) int {
	if player == game.PlayerBlack {
		return 1
	}
	return 2
}

func winnerFromStatus(status game.GameStatus) int {
	switch status {
	case game.StatusBlackWon:
		return 1
	case game.StatusWhiteWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status game.GameStatus) string {
	switch status {
	case game.StatusNotStarted:
		return "not_started"
	case game.StatusBlackWon:
		return "black_won"
	case game.StatusWhiteWon:
		return "white_won"
	case game.StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func historyToDTO(history game.MoveHistory) []historyEntryDTO {
	entries := history.All()
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, HistoryEntryToDTO(entry))
	}
	return result
}

func HistoryEntryToDTO(entry game.HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		X:         entry.Move.X,
		Y:         entry.Move.Y,
		Player:    playerToInt(entry.Player),
		ElapsedMs: entry.ElapsedMs,
		IsAi:      entry.IsAi,
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

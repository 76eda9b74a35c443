package game

type IPlayer interface {
	IsHuman() bool
	ChooseMove(state GameState, config Config) (Move, bool)
}

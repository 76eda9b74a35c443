package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gobang/internal/game"
)

func main() {
	app := tview.NewApplication()

	modeOption := "Computer"
	colorOption := "Black"
	blackStarts := true

	var showStartScreen func()
	var startGame func()

	showStartScreen = func() {
		form := tview.NewForm()
		form.
			AddDropDown("Opponent", []string{"Computer", "Second player"}, 0, func(option string, index int) {
				modeOption = option
			}).
			AddDropDown("Play as", []string{"Black", "White"}, 0, func(option string, index int) {
				colorOption = option
			}).
			AddCheckbox("Black moves first", true, func(checked bool) {
				blackStarts = checked
			}).
			AddButton("Start Game", func() {
				startGame()
			}).
			AddButton("Quit", func() {
				app.Stop()
			})
		form.SetBorder(true).SetTitle("Gobang").SetTitleAlign(tview.AlignCenter)

		app.SetRoot(form, true).SetFocus(form)
	}

	startGame = func() {
		settings := game.DefaultGameSettings()
		settings.BlackStarts = blackStarts
		if modeOption == "Second player" {
			settings.BlackType = game.PlayerHuman
			settings.WhiteType = game.PlayerHuman
		} else if colorOption == "White" {
			settings.BlackType = game.PlayerAI
			settings.WhiteType = game.PlayerHuman
		} else {
			settings.BlackType = game.PlayerHuman
			settings.WhiteType = game.PlayerAI
		}

		g := game.NewGame(settings)
		g.Start()

		boardTable := tview.NewTable()
		boardTable.SetSelectable(true, true)
		boardTable.SetBorder(true)
		boardTable.SetTitleAlign(tview.AlignLeft)
		boardTable.SetTitleColor(tcell.ColorGreen)
		boardTable.SetBorderColor(tcell.ColorGreen)

		statusBox := tview.NewTextView()
		statusBox.SetBorder(true)
		statusBox.SetTitle("Status")

		flex := tview.NewFlex().
			AddItem(boardTable, 0, 1, true).
			AddItem(statusBox, 34, 1, false)

		updateBoard := func() {
			state := g.State()
			size := state.Board.Size()
			winning := make(map[game.Move]bool, len(state.WinningLine))
			for _, m := range state.WinningLine {
				winning[m] = true
			}
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					cell := tview.NewTableCell(stoneSymbol(state.Board.At(x, y)))
					cell.SetAlign(tview.AlignCenter)
					if winning[game.Move{X: x, Y: y}] {
						cell.SetTextColor(tcell.ColorRed)
					} else if state.HasLastMove && state.LastMove.X == x && state.LastMove.Y == y {
						cell.SetTextColor(tcell.ColorYellow)
					}
					boardTable.SetCell(y, x, cell)
				}
			}

			boardTable.SetTitle(fmt.Sprintf(" Gobang - %s to move ", state.ToMove))
			statusBox.SetText(fmt.Sprintf(
				"Moves: %d\nTurn: %s\n\nEnter: place stone\nu: undo\nr: restart\nq: quit",
				g.HistoryLen(), state.ToMove))
		}

		var checkGameOver func() bool

		checkGameOver = func() bool {
			state := g.State()
			var result string
			switch state.Status {
			case game.StatusBlackWon:
				result = "Black wins!"
			case game.StatusWhiteWon:
				result = "White wins!"
			case game.StatusDraw:
				result = "Draw - board is full."
			default:
				return false
			}

			modal := tview.NewModal().
				SetText(fmt.Sprintf("Game Over!\n%s", result)).
				AddButtons([]string{"New Game", "Quit"}).
				SetDoneFunc(func(buttonIndex int, buttonLabel string) {
					if buttonLabel == "New Game" {
						showStartScreen()
					} else {
						app.Stop()
					}
				})

			app.SetRoot(modal, false).SetFocus(modal)
			return true
		}

		// One-ply selection is instant, so the computer reply runs inline.
		runAITurns := func() {
			for g.State().Status == game.StatusRunning && !g.CurrentPlayerIsHuman() {
				if !g.Tick() {
					break
				}
			}
		}

		boardTable.SetSelectedFunc(func(row, column int) {
			if !g.SubmitHumanMove(game.Move{X: column, Y: row}) {
				return
			}
			if !g.Tick() {
				return
			}
			runAITurns()
			updateBoard()
			checkGameOver()
		})

		boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			switch event.Rune() {
			case 'u':
				if g.UndoForHuman() > 0 {
					updateBoard()
				}
				return nil
			case 'r':
				showStartScreen()
				return nil
			case 'q':
				app.Stop()
				return nil
			}
			return event
		})

		center := settings.BoardSize / 2
		boardTable.Select(center, center)

		updateBoard()
		runAITurns()
		updateBoard()
		checkGameOver()

		app.SetRoot(flex, true).SetFocus(boardTable)
	}

	showStartScreen()

	if err := app.Run(); err != nil {
		panic(err)
	}
}

func stoneSymbol(cell game.Cell) string {
	switch cell {
	case game.CellBlack:
		return "⚫"
	case game.CellWhite:
		return "⚪"
	default:
		return "·"
	}
}

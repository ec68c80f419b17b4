package entity

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

type Status string

// Win is present only when the game concluded in a win.
type Win struct {
	Player Player
	Line   Line
}

// GameState is a snapshot of one game.
type GameState struct {
	Board   Board
	Current Player
	Win     *Win
}

func NewGameState(first Player) GameState {
	return GameState{Current: first}
}

// Clone returns a snapshot that shares nothing with the receiver.
func (that GameState) Clone() GameState {
	if that.Win != nil {
		win := *that.Win
		that.Win = &win
	}

	return that
}

func (that GameState) Status() Status {
	switch {
	case that.Win != nil:
		return StatusWon
	case that.Board.IsFull():
		return StatusDraw
	default:
		return StatusInProgress
	}
}

func (that GameState) IsTerminal() bool {
	return that.Status() != StatusInProgress
}

func (that GameState) IsWon() bool {
	return that.Status() == StatusWon
}

func (that GameState) IsDraw() bool {
	return that.Status() == StatusDraw
}

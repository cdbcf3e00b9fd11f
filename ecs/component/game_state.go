package component

type GameState int

const (
	GameActive GameState = iota
	GameMenu
	GameWin
)

func (s GameState) String() string {
	switch s {
	case GameActive:
		return "active"
	case GameMenu:
		return "menu"
	case GameWin:
		return "win"
	}
	return "unknown"
}

package game

// Screen is the top-level state of the window
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenPlaying
	ScreenPaused
	ScreenUpgrades
	ScreenSound
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "main menu"
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	case ScreenUpgrades:
		return "upgrades"
	case ScreenSound:
		return "sound"
	case ScreenGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Menu is a vertical list with one selected entry
type Menu struct {
	Title    string
	Items    []string
	Selected int
}

// NewMenu creates a menu with the first item selected
func NewMenu(title string, items ...string) *Menu {
	return &Menu{Title: title, Items: items}
}

// Move shifts the selection by delta, wrapping at both ends
func (m *Menu) Move(delta int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	m.Selected = ((m.Selected+delta)%n + n) % n
}

// Current returns the selected item text
func (m *Menu) Current() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected]
}

// Main menu entries
const (
	itemPlay     = "PLAY"
	itemUpgrades = "UPGRADES"
	itemSound    = "SOUND"
	itemQuit     = "QUIT"
	itemRestart  = "RESTART"
	itemMainMenu = "MAIN MENU"
	itemBack     = "BACK"
	itemResume   = "RESUME"
)

func newMainMenu() *Menu {
	return NewMenu("VOID VANGUARD", itemPlay, itemUpgrades, itemSound, itemQuit)
}

func newGameOverMenu() *Menu {
	return NewMenu("GAME OVER", itemRestart, itemMainMenu, itemQuit)
}

func newPauseMenu() *Menu {
	return NewMenu("PAUSED", itemResume, itemMainMenu, itemQuit)
}

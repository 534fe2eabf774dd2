package game

// DebugState holds debug toggles that persist across sessions
type DebugState struct {
	ShowStats     bool // F1: entity counts, difficulty and FPS overlay
	Autopilot     bool // F2: the auto-aim pilot plays instead of the mouse
	ProfileOnDrop bool // F3: capture a CPU profile and trace when FPS drops
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

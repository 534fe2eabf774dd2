package game

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"voidvanguard/sim"
)

// PlayerInput turns keyboard and mouse state into simulation intents
type PlayerInput struct {
	keys []ebiten.Key
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{
		keys: make([]ebiten.Key, 0, 10),
	}
}

// Update refreshes the pressed key set for this frame
func (p *PlayerInput) Update() {
	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
}

func (p *PlayerInput) pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if slices.Contains(p.keys, k) {
			return true
		}
	}
	return false
}

// Movement returns the WASD or arrow key direction
func (p *PlayerInput) Movement() sim.Vec {
	var move sim.Vec
	if p.pressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		move.X--
	}
	if p.pressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		move.X++
	}
	if p.pressed(ebiten.KeyArrowUp, ebiten.KeyW) {
		move.Y--
	}
	if p.pressed(ebiten.KeyArrowDown, ebiten.KeyS) {
		move.Y++
	}
	return move
}

// Cursor returns the mouse position in screen coordinates
func (p *PlayerInput) Cursor() sim.Vec {
	x, y := ebiten.CursorPosition()
	return sim.Vec{X: float64(x), Y: float64(y)}
}

// Intent builds the simulation input: one volley per click, aimed at the cursor.
// Space drops an extra grunt.
func (p *PlayerInput) Intent() sim.Input {
	return sim.Input{
		Move:       p.Movement(),
		Fire:       inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Aim:        p.Cursor(),
		DebugSpawn: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

// MenuDelta returns -1 or +1 when the selection should move this frame
func MenuDelta() int {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		return -1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		return 1
	}
	return 0
}

// SideDelta returns -1 or +1 for left and right presses
func SideDelta() int {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		return -1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		return 1
	}
	return 0
}

// Confirmed reports whether the selected entry was activated
func Confirmed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// Cancelled reports whether the player backed out
func Cancelled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

package game

import (
	"image/color"
	"math"
	"math/rand"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"voidvanguard/sim"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Renderer draws the play field from world snapshots
type Renderer struct {
	width, height float64

	stars []sim.Vec

	// Scratch buffers reused every frame
	entities []sim.EntityView
	shots    []sim.Vec
}

// NewRenderer creates a renderer with a fixed star field
func NewRenderer(width, height float64, rng *rand.Rand) *Renderer {
	r := &Renderer{
		width:  width,
		height: height,
		stars:  make([]sim.Vec, 100),
	}
	for i := range r.stars {
		r.stars[i] = sim.Vec{X: rng.Float64() * width, Y: rng.Float64() * height}
	}
	return r
}

// Render draws the background, hostiles, shots, the player and the HUD
func (r *Renderer) Render(screen *ebiten.Image, w *sim.World) {
	screen.Fill(Backdrop(w.Score()))
	for _, s := range r.stars {
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), 2, 2, textColor, false)
	}

	r.entities = w.AppendEntities(r.entities[:0])
	for i := range r.entities {
		r.RenderEntity(screen, &r.entities[i])
	}

	r.shots = w.AppendPlayerShots(r.shots[:0])
	for _, s := range r.shots {
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), 5, 5, playerShotColor, false)
	}
	r.shots = w.AppendHostileShots(r.shots[:0])
	for _, s := range r.shots {
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), 5, 5, hostileShotColor, false)
	}

	p := w.Player()
	if p.Alive() {
		b := p.Box
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), playerColor, false)
	}

	r.renderHUD(screen, w)
}

// RenderEntity draws one hostile, or its explosion
func (r *Renderer) RenderEntity(screen *ebiten.Image, e *sim.EntityView) {
	style := GetVariantStyle(e.Variant)
	b := e.Box

	switch e.State {
	case sim.Exploding:
		// The blast grows by 20 units over its lifetime with four sparks around it
		size := b.W + 20*e.Explosion
		off := (size - b.W) / 2
		vector.DrawFilledRect(screen, float32(b.X-off), float32(b.Y-off), float32(size), float32(size), style.BlastColor(e.Explosion), false)
		for i := 0; i < 4; i++ {
			angle := float64(i) * math.Pi / 2
			sx := b.X + math.Cos(angle)*size*0.6
			sy := b.Y + math.Sin(angle)*size*0.6
			vector.DrawFilledRect(screen, float32(sx-2), float32(sy-2), 4, 4, sparkColor, false)
		}
		return
	case sim.Dead:
		return
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), style.BodyColor(e.Health), false)

	if style.HealthBar {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y-5), float32(b.W), 3, healthBackColor, false)
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y-5), float32(b.W*e.Health), 3, healthFillColor, false)
	}
}

func (r *Renderer) renderHUD(screen *ebiten.Image, w *sim.World) {
	p := w.Player()
	if p.Alive() {
		vector.DrawFilledRect(screen, 10, 10, float32(p.Health), 20, playerColor, false)
	}
	drawText(screen, "SCORE: "+strconv.Itoa(w.Score()), r.width-10, 10, 2, textColor, text.AlignEnd)
	drawText(screen, weaponLabel(w.Upgrades()), 10, 36, 1, textColor, text.AlignStart)
}

// RenderCrosshair draws a ring at the cursor, highlighted over a live hostile.
// It uses the entities captured by the last Render.
func (r *Renderer) RenderCrosshair(screen *ebiten.Image, at sim.Vec) {
	clr := textColor
	if hovered(r.entities, at) {
		clr = selectedColor
	}
	vector.StrokeCircle(screen, float32(at.X), float32(at.Y), 8, 2, clr, true)
}

// hovered reports whether at lies on an Active entity
func hovered(entities []sim.EntityView, at sim.Vec) bool {
	for i := range entities {
		if entities[i].State == sim.Active && entities[i].Box.Contains(at) {
			return true
		}
	}
	return false
}

// weaponLabel summarizes the session's weapon upgrades for the HUD
func weaponLabel(u sim.Upgrades) string {
	shots := "SINGLE"
	switch u.Pattern() {
	case sim.DoubleShot:
		shots = "DOUBLE"
	case sim.TripleShot:
		shots = "TRIPLE"
	}
	return "DMG LV " + strconv.Itoa(u.DamageLevel) + "  " + shots
}

// RenderMenu draws a titled list with the selected line highlighted.
// Lines in disabled are dimmed.
func (r *Renderer) RenderMenu(screen *ebiten.Image, m *Menu, disabled map[int]bool, footer []string) {
	cx := r.width / 2
	drawText(screen, m.Title, cx, 80, 4, textColor, text.AlignCenter)

	y := 200.0
	for i, item := range m.Items {
		clr := textColor
		switch {
		case i == m.Selected:
			clr = selectedColor
			item = "> " + item + " <"
		case disabled[i]:
			clr = dimTextColor
		}
		drawText(screen, item, cx, y, 2, clr, text.AlignCenter)
		y += 40
	}

	y += 20
	for _, line := range footer {
		drawText(screen, line, cx, y, 1.5, textColor, text.AlignCenter)
		y += 24
	}
}

// drawText draws s with its top anchored at y and horizontal alignment relative to x
func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

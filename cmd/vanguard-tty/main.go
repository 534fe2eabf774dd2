// vanguard-tty plays the arena in a terminal. The field keeps its pixel
// coordinates and is scaled onto the character grid.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"voidvanguard/autoaim"
	"voidvanguard/config"
	"voidvanguard/logging"
	"voidvanguard/profile"
	"voidvanguard/sfx"
	"voidvanguard/sim"
)

const (
	tickRate = 16 * time.Millisecond
	// Terminals only report presses, so a move key is held this long
	holdTime = 0.2
)

var variantRunes = map[sim.Variant]rune{
	sim.Grunt:  'g',
	sim.Elite:  'E',
	sim.Boss:   'B',
	sim.Minion: 'm',
}

var variantStyles = map[sim.Variant]tcell.Style{
	sim.Grunt:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	sim.Elite:  tcell.StyleDefault.Foreground(tcell.ColorPurple),
	sim.Boss:   tcell.StyleDefault.Foreground(tcell.ColorDarkRed).Bold(true),
	sim.Minion: tcell.StyleDefault.Foreground(tcell.ColorOrange),
}

type terminalGame struct {
	screen tcell.Screen
	log    *zap.Logger

	world *sim.World
	pilot *autoaim.Pilot
	sound *sfx.Player

	profiles *profile.Store
	profile  *profile.Profile

	runID     string
	autopilot bool
	paused    bool
	over      bool
	earned    int

	move      sim.Vec
	moveHold  float64
	fire      bool
	spawn     bool
	width     int
	height    int
	views     []sim.EntityView
	shots     []sim.Vec
	lastFrame time.Time
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFlag := flag.String("config", "", "path to the TOML config (or set "+config.EnvPath+")")
	logFile := flag.String("log", "vanguard-tty.log", "log file; the terminal itself is the screen")
	flag.Parse()

	cfg, err := config.Load(config.Path(*configFlag))
	if err != nil {
		return err
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = *logFile
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	store := profile.NewStore(cfg.Profile.Path)
	store.SetDefaultVolume(cfg.Sound.Volume)
	prof, err := store.Load()
	if err != nil {
		log.Warn("load profile failed, starting fresh", zap.Error(err))
		prof = profile.New()
	}

	sound := sfx.NewPlayer(cfg.Sound.SampleRate, prof.Volume, cfg.Sound.Enabled, log.Named("sfx"))
	if err := sound.Init(); err != nil {
		// Non-fatal, the game runs silent
		log.Warn("audio unavailable", zap.Error(err))
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	world := sim.NewWorld(cfg.Sim,
		sim.WithLogger(log.Named("sim")),
		sim.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))),
		sim.WithUpgrades(prof.SimUpgrades()),
	)

	g := &terminalGame{
		screen:    screen,
		log:       log,
		world:     world,
		pilot:     autoaim.NewPilot(cfg.Sim.ShotSpeed),
		sound:     sound,
		profiles:  store,
		profile:   prof,
		autopilot: true,
	}
	g.width, g.height = screen.Size()
	g.restart()
	g.loop()
	return nil
}

func (g *terminalGame) restart() {
	g.world.SetUpgrades(g.profile.SimUpgrades())
	g.world.Reset()
	g.runID = uuid.NewString()
	g.over = false
	g.paused = false
	g.lastFrame = time.Now()
	g.log.Info("session start", zap.String("run", g.runID), zap.Bool("autopilot", g.autopilot))
}

func (g *terminalGame) loop() {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(g.screen.PollEvent, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				if !g.over {
					g.finish()
				}
				return
			}
		case <-ticker.C:
			g.update()
			g.draw()
		}
	}
}

// pumpEvents forwards polled events until poll returns nil or done closes
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (g *terminalGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.hold(sim.Vec{Y: -1})
		case tcell.KeyDown:
			g.hold(sim.Vec{Y: 1})
		case tcell.KeyLeft:
			g.hold(sim.Vec{X: -1})
		case tcell.KeyRight:
			g.hold(sim.Vec{X: 1})
		case tcell.KeyRune:
			return g.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

func (g *terminalGame) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'w':
		g.hold(sim.Vec{Y: -1})
	case 's':
		g.hold(sim.Vec{Y: 1})
	case 'a':
		g.hold(sim.Vec{X: -1})
	case 'd':
		g.hold(sim.Vec{X: 1})
	case ' ', 'f':
		g.fire = true
	case 'x':
		g.spawn = true
	case 't':
		g.autopilot = !g.autopilot
	case 'p':
		g.paused = !g.paused
	case 'r':
		if g.over {
			g.restart()
		}
	case '+', '=':
		g.sound.SetVolume(g.profile.StepVolume(true))
		g.save()
	case '-':
		g.sound.SetVolume(g.profile.StepVolume(false))
		g.save()
	}
	return true
}

func (g *terminalGame) hold(dir sim.Vec) {
	g.move = dir
	g.moveHold = holdTime
}

func (g *terminalGame) update() {
	now := time.Now()
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now
	if dt > 0.1 {
		dt = 0.1
	}
	if g.over || g.paused {
		return
	}

	g.views = g.world.AppendEntities(g.views[:0])
	cfg := g.world.Config()
	field := sim.Rect{W: cfg.FieldWidth, H: cfg.FieldHeight}
	auto := g.pilot.Next(dt, g.world.Player(), g.views, field)

	lead, hasLead := g.pilot.AimPoint()
	in := steer(auto, g.autopilot, lead, hasLead, g.world.Player().Center(), g.fire)
	in.DebugSpawn = g.spawn
	if g.moveHold > 0 {
		in.Move = g.move
		g.moveHold -= dt
	}
	g.fire, g.spawn = false, false

	report := g.world.Step(dt, in)
	g.sound.PlayReport(report)
	if report.PlayerDead {
		g.finish()
	}
}

// steer merges the autopilot's input with the manual trigger. Manual shots
// follow the pilot's lead solution and head right when there is none.
func steer(auto sim.Input, autopilot bool, lead sim.Vec, hasLead bool, origin sim.Vec, fire bool) sim.Input {
	if autopilot {
		return sim.Input{Move: auto.Move, Fire: auto.Fire, Aim: auto.Aim}
	}
	in := sim.Input{Fire: fire, Aim: origin.Add(sim.Vec{X: 1})}
	if hasLead {
		in.Aim = lead
	}
	return in
}

func (g *terminalGame) finish() {
	score := g.world.Score()
	g.earned = g.profile.Settle(score)
	g.save()
	g.over = true
	g.log.Info("game over",
		zap.String("run", g.runID),
		zap.Int("score", score),
		zap.Int("coins_earned", g.earned),
		zap.Float64("play_time", g.world.PlayTime()),
	)
}

func (g *terminalGame) save() {
	if err := g.profiles.Save(g.profile); err != nil {
		g.log.Warn("save profile failed", zap.Error(err))
	}
}

// cell maps a field position onto the grid above the status line
func (g *terminalGame) cell(p sim.Vec) (int, int, bool) {
	cfg := g.world.Config()
	rows := g.height - 1
	if g.width <= 0 || rows <= 0 {
		return 0, 0, false
	}
	x := int(p.X * float64(g.width) / cfg.FieldWidth)
	y := int(p.Y * float64(rows) / cfg.FieldHeight)
	if x < 0 || x >= g.width || y < 0 || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

func (g *terminalGame) put(p sim.Vec, r rune, style tcell.Style) {
	if x, y, ok := g.cell(p); ok {
		g.screen.SetContent(x, y, r, nil, style)
	}
}

func (g *terminalGame) draw() {
	g.screen.Clear()

	g.views = g.world.AppendEntities(g.views[:0])
	for i := range g.views {
		v := &g.views[i]
		if v.State == sim.Exploding {
			g.put(v.Box.Center(), '*', tcell.StyleDefault.Foreground(tcell.ColorYellow))
			continue
		}
		g.put(v.Box.Center(), variantRunes[v.Variant], variantStyles[v.Variant])
	}

	g.shots = g.world.AppendPlayerShots(g.shots[:0])
	for _, s := range g.shots {
		g.put(s, '.', tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	g.shots = g.world.AppendHostileShots(g.shots[:0])
	for _, s := range g.shots {
		g.put(s, 'o', tcell.StyleDefault.Foreground(tcell.ColorFuchsia))
	}

	player := g.world.Player()
	g.put(player.Center(), '@', tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true))

	status := fmt.Sprintf(" HP %d/%d  SCORE %d  LVL %d  T %.0fs  AUTO %v  VOL %d ",
		player.Health, player.MaxHealth, g.world.Score(), g.world.Difficulty(), g.world.PlayTime(),
		g.autopilot, g.sound.Volume())
	switch {
	case g.over:
		status += fmt.Sprintf("| GAME OVER +%d COINS (r restart, q quit)", g.earned)
	case g.paused:
		status += "| PAUSED"
	}
	g.drawLine(g.height-1, status, tcell.StyleDefault.Reverse(true))
	g.screen.Show()
}

func (g *terminalGame) drawLine(y int, s string, style tcell.Style) {
	x := 0
	for _, r := range s {
		if x >= g.width {
			return
		}
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

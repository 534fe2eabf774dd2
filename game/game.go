package game

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"voidvanguard/autoaim"
	"voidvanguard/config"
	"voidvanguard/profile"
	"voidvanguard/sfx"
	"voidvanguard/sim"
)

// Game is the ebiten front end: menus around one simulation world
type Game struct {
	cfg *config.Config
	log *zap.Logger

	world    *sim.World
	renderer *Renderer
	input    *PlayerInput
	pilot    *autoaim.Pilot
	sound    *sfx.Player
	profiler *Profiler

	profiles *profile.Store
	profile  *profile.Profile

	screen    Screen
	mainMenu  *Menu
	pauseMenu *Menu
	overMenu  *Menu
	shopMenu  *Menu
	soundMenu *Menu

	// Current session
	runID      string
	lastEarned int

	// Transient line shown under menus
	message      string
	messageTimer float64

	// Scratch buffer for the autopilot
	views []sim.EntityView

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64
	lastFPSDropTime  time.Time
	fpsDropCooldown  time.Duration
	gameStartTime    time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance showing the main menu
func NewGame(cfg *config.Config, log *zap.Logger, store *profile.Store, prof *profile.Profile, sound *sfx.Player) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	width, height := float64(cfg.Window.Width), float64(cfg.Window.Height)

	world := sim.NewWorld(cfg.Sim,
		sim.WithLogger(log.Named("sim")),
		sim.WithRand(rng),
		sim.WithUpgrades(prof.SimUpgrades()),
	)
	world.Resize(width, height)

	g := &Game{
		cfg:             cfg,
		log:             log,
		world:           world,
		renderer:        NewRenderer(width, height, rng),
		input:           NewPlayerInput(),
		pilot:           autoaim.NewPilot(cfg.Sim.ShotSpeed),
		sound:           sound,
		profiler:        NewProfiler("profiles", log.Named("profiler")),
		profiles:        store,
		profile:         prof,
		screen:          ScreenMainMenu,
		mainMenu:        newMainMenu(),
		pauseMenu:       newPauseMenu(),
		overMenu:        newGameOverMenu(),
		shopMenu:        NewMenu("UPGRADES", shopLabels(prof)...),
		soundMenu:       NewMenu("SOUND", volumeLabel(prof.Volume), itemBack),
		fps:             60.0,
		fpsDropCooldown: 10 * time.Second,
		gameStartTime:   time.Now(),
		lastUpdateTime:  time.Now(),
	}
	sound.SetVolume(prof.Volume)
	return g
}

// Screen returns the current top-level state
func (g *Game) Screen() Screen {
	return g.screen
}

// startSession resets the world with the purchased upgrades
func (g *Game) startSession() {
	g.world.SetUpgrades(g.profile.SimUpgrades())
	g.world.Reset()
	g.runID = uuid.NewString()
	g.screen = ScreenPlaying
	g.log.Info("session start",
		zap.String("run", g.runID),
		zap.Int("damage_level", g.profile.Upgrades.DamageLevel),
		zap.Bool("double_shot", g.profile.Upgrades.DoubleShot),
		zap.Bool("triple_shot", g.profile.Upgrades.TripleShot),
	)
}

// finishSession converts the score into coins and shows the game over menu
func (g *Game) finishSession() {
	score := g.world.Score()
	g.lastEarned = g.profile.Settle(score)
	g.saveProfile()

	g.log.Info("game over",
		zap.String("run", g.runID),
		zap.Int("score", score),
		zap.Int("coins_earned", g.lastEarned),
		zap.Int("coins", g.profile.Coins),
		zap.Float64("play_time", g.world.PlayTime()),
		zap.Int("difficulty", g.world.Difficulty()),
	)
	g.overMenu.Selected = 0
	g.screen = ScreenGameOver
}

func (g *Game) saveProfile() {
	if err := g.profiles.Save(g.profile); err != nil {
		g.log.Warn("save profile failed", zap.Error(err))
	}
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTimer = 2
}

// Update advances one frame
func (g *Game) Update() error {
	// Calculate delta time
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	debugState := GetDebugState()
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState.ShowStats = !debugState.ShowStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		debugState.Autopilot = !debugState.Autopilot
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		debugState.ProfileOnDrop = !debugState.ProfileOnDrop
	}
	g.trackFPS(deltaTime)

	if g.messageTimer > 0 {
		g.messageTimer -= deltaTime
	}

	switch g.screen {
	case ScreenMainMenu:
		return g.updateMainMenu()
	case ScreenPlaying:
		g.updatePlaying(deltaTime)
	case ScreenPaused:
		return g.updatePaused()
	case ScreenUpgrades:
		g.updateUpgrades()
	case ScreenSound:
		g.updateSound()
	case ScreenGameOver:
		return g.updateGameOver()
	}
	return nil
}

func (g *Game) trackFPS(deltaTime float64) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0

	// Skip detection in the first 3 seconds after launch
	if !GetDebugState().ProfileOnDrop || g.fps >= 45 ||
		time.Since(g.gameStartTime) < 3*time.Second ||
		time.Since(g.lastFPSDropTime) < g.fpsDropCooldown {
		return
	}
	g.lastFPSDropTime = time.Now()

	_, total := g.world.Counts()
	reason := fmt.Sprintf("fps%.0f-entities%d", g.fps, total)
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	g.log.Warn("fps drop",
		zap.Float64("fps", g.fps),
		zap.Int("entities", total),
		zap.Uint32("num_gc", m.NumGC),
		zap.Uint64("heap_alloc_kb", m.HeapAlloc/1024),
	)
	if err := g.profiler.CaptureProfile(reason); err != nil {
		g.log.Debug("profile not captured", zap.Error(err))
	}
}

func (g *Game) updateMainMenu() error {
	g.mainMenu.Move(MenuDelta())
	if !Confirmed() {
		return nil
	}
	g.sound.Play(sfx.CueMenu)
	switch g.mainMenu.Current() {
	case itemPlay:
		g.startSession()
	case itemUpgrades:
		g.shopMenu.Items = shopLabels(g.profile)
		g.shopMenu.Selected = 0
		g.screen = ScreenUpgrades
	case itemSound:
		g.soundMenu.Selected = 0
		g.screen = ScreenSound
	case itemQuit:
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updatePlaying(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pauseMenu.Selected = 0
		g.screen = ScreenPaused
		return
	}

	g.input.Update()
	in := g.input.Intent()
	if GetDebugState().Autopilot {
		g.views = g.world.AppendEntities(g.views[:0])
		cfg := g.world.Config()
		field := sim.Rect{W: cfg.FieldWidth, H: cfg.FieldHeight}
		auto := g.pilot.Next(dt, g.world.Player(), g.views, field)
		auto.DebugSpawn = in.DebugSpawn
		in = auto
	}

	report := g.world.Step(dt, in)
	g.sound.PlayReport(report)
	if report.PlayerDead {
		g.finishSession()
	}
}

func (g *Game) updatePaused() error {
	if Cancelled() {
		g.screen = ScreenPlaying
		return nil
	}
	g.pauseMenu.Move(MenuDelta())
	if !Confirmed() {
		return nil
	}
	switch g.pauseMenu.Current() {
	case itemResume:
		g.screen = ScreenPlaying
	case itemMainMenu:
		// Leaving mid-run still pays out
		g.finishSession()
		g.screen = ScreenMainMenu
	case itemQuit:
		g.finishSession()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updateUpgrades() {
	if Cancelled() {
		g.screen = ScreenMainMenu
		return
	}
	g.shopMenu.Move(MenuDelta())
	if !Confirmed() {
		return
	}
	if g.shopMenu.Current() == itemBack {
		g.screen = ScreenMainMenu
		return
	}

	item := profile.Items[g.shopMenu.Selected]
	switch err := g.profile.Buy(item); {
	case err == nil:
		g.sound.Play(sfx.CuePurchase)
		g.saveProfile()
		g.flash("BOUGHT " + g.shopMenu.Current())
		g.log.Info("upgrade bought", zap.Stringer("item", item), zap.Int("coins", g.profile.Coins))
	case errors.Is(err, profile.ErrInsufficientCoins):
		g.flash("NOT ENOUGH COINS")
	case errors.Is(err, profile.ErrAlreadyOwned):
		g.flash("ALREADY OWNED")
	default:
		g.log.Warn("purchase failed", zap.Stringer("item", item), zap.Error(err))
	}
	g.shopMenu.Items = shopLabels(g.profile)
}

func (g *Game) updateSound() {
	if Cancelled() {
		g.screen = ScreenMainMenu
		return
	}
	g.soundMenu.Move(MenuDelta())
	if g.soundMenu.Selected == 0 {
		if d := SideDelta(); d != 0 {
			g.sound.SetVolume(g.profile.StepVolume(d > 0))
			g.sound.Play(sfx.CueMenu)
			g.soundMenu.Items[0] = volumeLabel(g.profile.Volume)
			g.saveProfile()
		}
	}
	if Confirmed() && g.soundMenu.Current() == itemBack {
		g.screen = ScreenMainMenu
	}
}

func (g *Game) updateGameOver() error {
	g.overMenu.Move(MenuDelta())
	if !Confirmed() {
		return nil
	}
	switch g.overMenu.Current() {
	case itemRestart:
		g.startSession()
	case itemMainMenu:
		g.screen = ScreenMainMenu
	case itemQuit:
		return ebiten.Termination
	}
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.screen {
	case ScreenPlaying:
		g.renderer.Render(screen, g.world)
		g.renderer.RenderCrosshair(screen, g.crosshair())
	case ScreenPaused:
		g.renderer.Render(screen, g.world)
		g.renderer.RenderMenu(screen, g.pauseMenu, nil, nil)
	case ScreenMainMenu:
		screen.Fill(Backdrop(0))
		g.renderer.RenderMenu(screen, g.mainMenu, nil, g.messageLines(fmt.Sprintf("COINS: %d  BEST: %d", g.profile.Coins, g.profile.Best)))
	case ScreenUpgrades:
		screen.Fill(Backdrop(0))
		disabled := map[int]bool{}
		for i, item := range profile.Items {
			disabled[i] = !g.profile.CanBuy(item)
		}
		g.renderer.RenderMenu(screen, g.shopMenu, disabled, g.messageLines(shopStatus(g.profile)...))
	case ScreenSound:
		screen.Fill(Backdrop(0))
		g.renderer.RenderMenu(screen, g.soundMenu, nil, []string{"LEFT / RIGHT TO ADJUST"})
	case ScreenGameOver:
		g.renderer.Render(screen, g.world)
		g.renderer.RenderMenu(screen, g.overMenu, nil, []string{
			fmt.Sprintf("SCORE: %d", g.world.Score()),
			fmt.Sprintf("COINS EARNED: %d", g.lastEarned),
		})
	}

	if GetDebugState().ShowStats {
		ebitenutil.DebugPrintAt(screen, g.statsText(), 10, 56)
	}
}

// statsText is the F1 overlay
func (g *Game) statsText() string {
	active, total := g.world.Counts()
	difficulty := g.world.Difficulty()
	return fmt.Sprintf("FPS: %.0f\nEntities: %d/%d (cap %d)\nDifficulty: %d\nTime: %.1fs\nSpawn timer: %.1f/%.1fs\nSounds: %d\nAutopilot: %v",
		g.fps, active, total, sim.PopulationCap(difficulty), difficulty, g.world.PlayTime(),
		g.world.Director().Timer(), sim.SpawnInterval(difficulty),
		g.sound.Pending(), GetDebugState().Autopilot)
}

func (g *Game) crosshair() sim.Vec {
	if GetDebugState().Autopilot {
		if aim, ok := g.pilot.AimPoint(); ok {
			return aim
		}
	}
	return g.input.Cursor()
}

func (g *Game) messageLines(lines ...string) []string {
	if g.messageTimer > 0 && g.message != "" {
		lines = append(lines, g.message)
	}
	return lines
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

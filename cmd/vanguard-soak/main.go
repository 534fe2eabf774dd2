// vanguard-soak runs the simulation headless with the autopilot at the
// controls and logs a summary. Useful for checking pool bounds and the
// difficulty curve over long sessions.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voidvanguard/autoaim"
	"voidvanguard/config"
	"voidvanguard/logging"
	"voidvanguard/sim"
)

type totals struct {
	steps       int
	shotsFired  int
	hitsLanded  int
	kills       int
	explosions  int
	spawned     int
	damageTaken int
	peakActive  int
	peakTotal   int
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFlag := flag.String("config", "", "path to the TOML config (or set "+config.EnvPath+")")
	seconds := flag.Float64("seconds", 600, "simulated seconds to run")
	dt := flag.Float64("dt", 1.0/60, "fixed step in seconds")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	immortal := flag.Bool("immortal", true, "keep playing after the player would have died")
	entities := flag.Int("entities", 0, "override the entity pool capacity")
	flag.Parse()

	cfg, err := config.Load(config.Path(*configFlag))
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if *dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v", *dt)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *entities > 0 {
		cfg.Sim.EntityCapacity = *entities
	}
	if *immortal {
		cfg.Sim.PlayerHealth = 1 << 30
	}

	runID := uuid.NewString()
	log = log.With(zap.String("run", runID))
	log.Info("soak start",
		zap.Float64("seconds", *seconds),
		zap.Float64("dt", *dt),
		zap.Int64("seed", *seed),
		zap.Int("entity_capacity", cfg.Sim.EntityCapacity),
		zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)),
	)

	world := sim.NewWorld(cfg.Sim,
		sim.WithLogger(log.Named("sim")),
		sim.WithRand(rand.New(rand.NewSource(*seed))),
		sim.WithUpgrades(sim.Upgrades{DamageLevel: 2, TripleShot: true}),
	)
	pilot := autoaim.NewPilot(cfg.Sim.ShotSpeed)
	field := sim.Rect{W: cfg.Sim.FieldWidth, H: cfg.Sim.FieldHeight}

	var (
		t     totals
		views []sim.EntityView
	)
	started := time.Now()
	lastReport := 0
	for world.PlayTime() < *seconds {
		views = world.AppendEntities(views[:0])
		report := world.Step(*dt, pilot.Next(*dt, world.Player(), views, field))
		t.add(report)

		active, total := world.Counts()
		t.peakActive = max(t.peakActive, active)
		t.peakTotal = max(t.peakTotal, total)
		if total > cfg.Sim.EntityCapacity {
			return fmt.Errorf("entity pool overflow: %d > %d", total, cfg.Sim.EntityCapacity)
		}

		if report.PlayerDead {
			log.Info("player died", zap.Float64("play_time", world.PlayTime()))
			break
		}
		if minute := int(world.PlayTime() / 60); minute > lastReport {
			lastReport = minute
			log.Info("progress",
				zap.Int("minute", minute),
				zap.Int("difficulty", world.Difficulty()),
				zap.Int("active", active),
				zap.Int("score", world.Score()),
			)
		}
	}

	elapsed := time.Since(started)
	accuracy := 0.0
	if t.shotsFired > 0 {
		accuracy = float64(t.hitsLanded) / float64(t.shotsFired)
	}
	log.Info("soak done",
		zap.Duration("wall", elapsed),
		zap.Int("steps", t.steps),
		zap.Float64("play_time", world.PlayTime()),
		zap.Int("difficulty", world.Difficulty()),
		zap.Int("score", world.Score()),
		zap.Int("kills", t.kills),
		zap.Int("explosions", t.explosions),
		zap.Int("spawned", t.spawned),
		zap.Int("shots_fired", t.shotsFired),
		zap.Float64("accuracy", accuracy),
		zap.Int("damage_taken", t.damageTaken),
		zap.Int("peak_active", t.peakActive),
		zap.Int("peak_total", t.peakTotal),
	)
	return nil
}

func (t *totals) add(r sim.Report) {
	t.steps++
	t.shotsFired += r.ShotsFired
	t.hitsLanded += r.HitsLanded
	t.kills += r.Kills
	t.explosions += r.Explosions
	t.spawned += r.Spawned
	t.damageTaken += r.Damage()
}

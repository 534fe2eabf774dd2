package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"voidvanguard/config"
	"voidvanguard/game"
	"voidvanguard/logging"
	"voidvanguard/profile"
	"voidvanguard/sfx"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFlag := flag.String("config", "", "path to the TOML config (or set "+config.EnvPath+")")
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

	store := profile.NewStore(cfg.Profile.Path)
	store.SetDefaultVolume(cfg.Sound.Volume)
	prof, err := store.Load()
	if err != nil {
		// A corrupt profile should not keep the game from starting
		log.Warn("load profile failed, starting fresh", zap.String("path", store.Path()), zap.Error(err))
		prof = profile.New()
	}

	sound := sfx.NewPlayer(cfg.Sound.SampleRate, prof.Volume, cfg.Sound.Enabled, log.Named("sfx"))
	if err := sound.Init(); err != nil {
		log.Warn("audio unavailable", zap.Error(err))
	}
	defer sound.Close()

	log.Info("starting",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("coins", prof.Coins),
		zap.Int("best", prof.Best),
	)

	g := game.NewGame(cfg, log, store, prof, sound)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("shutdown", zap.Int("coins", prof.Coins), zap.Int("best", prof.Best))
	return nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"ruins/pkg/engine/input"
	"ruins/pkg/game/config"
	"ruins/pkg/game/gameplay"
	"ruins/pkg/game/locale"
	"ruins/pkg/game/logging"
	"ruins/pkg/game/renderer"
	"ruins/pkg/game/renderer/tui"
	"ruins/pkg/game/setup"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a TOML settings file")
	mapPath := flag.String("map", "", "path to a YAML room map (default: the built-in ruins)")
	localePath := flag.String("locale", "", "path to a .po narration catalogue")
	noColor := flag.Bool("no-color", false, "disable coloured output")
	statusLine := flag.Bool("status", false, "print an exits summary under each room")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if *mapPath != "" {
		cfg.Game.MapFile = *mapPath
	}
	if *localePath != "" {
		cfg.Game.LocaleFile = *localePath
	}
	if *noColor {
		cfg.Display.Color = false
	}
	if *statusLine {
		cfg.Display.StatusLine = true
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 2
	}
	defer log.Sync()

	if cfg.Game.LocaleFile != "" {
		cat, err := locale.Load(cfg.Game.LocaleFile)
		if err != nil {
			log.Error("load locale", zap.Error(err))
			return 1
		}
		locale.Use(cat)
	}

	m, err := loadMap(cfg.Game.MapFile)
	if err != nil {
		log.Error("load map", zap.Error(err))
		return 1
	}
	if lost := m.Unreachable(); len(lost) > 0 {
		log.Warn("map has rooms cut off from the start",
			zap.String("map", m.Name),
			zap.Any("rooms", lost),
		)
	}
	if !m.Solvable() {
		log.Warn("map cannot be won: treasure out of reach",
			zap.String("map", m.Name),
			zap.Any("rooms", m.TreasureOutOfReach()),
		)
	}
	log.Info("map loaded",
		zap.String("map", m.Name),
		zap.Int("rooms", m.RoomCount()),
		zap.Int("treasure", m.TreasureCount()),
	)

	out := tui.New(os.Stdout, tui.Options{
		Color:      cfg.Display.Color,
		StatusLine: cfg.Display.StatusLine,
		Width:      cfg.Display.Width,
	})
	out.Init()

	if cfg.Game.StartBanner {
		gameplay.Intro(out)
	}

	loop := gameplay.NewLoop(gameplay.BuildGame(m), input.NewReader(os.Stdin), out, log)
	loop.Prompt = true

	if _, err := loop.Run(context.Background()); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stdout)
			out.ShowMessage(locale.Get("GOODBYE"), renderer.StyleSubtle)
			return 0
		}
		log.Error("game stopped", zap.Error(err))
		return 1
	}
	return 0
}

// loadConfig returns the defaults when no settings file is given
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// loadMap returns the built-in ruins when no map file is given
func loadMap(path string) (*setup.RuinsMap, error) {
	if path == "" {
		return setup.DefaultMap()
	}
	return setup.LoadMap(path)
}

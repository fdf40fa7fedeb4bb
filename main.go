package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/slimemold/config"
	"github.com/pthm-cable/slimemold/game"
	"github.com/pthm-cable/slimemold/renderer"
	"github.com/pthm-cable/slimemold/tui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	terminal := flag.Bool("tui", false, "Render in the terminal instead of a window")
	sound := flag.Bool("sound", false, "Chime on every spawn batch (terminal mode)")
	obstacles := flag.Bool("obstacles", false, "Place the configured non-attractors")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, trails and plot")
	gridOut := flag.String("grid-out", "", "Force grid CSV path (empty = new.csv or new_with_obstacles.csv)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 200, "Stop after N ticks (0 = unlimited; headless always needs a limit)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call")
	logFile := flag.String("log-file", "", "Append logs to this file (empty = stdout, or "+terminalLogFile+" with -tui)")

	flag.Parse()

	// Set up slog (JSON, kept off the screen in terminal mode)
	logOut, closeLog, err := openLogOutput(*logFile, *terminal && !*headless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger := slog.New(slog.NewJSONHandler(logOut, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *headless && *maxTicks <= 0 {
		slog.Error("headless mode needs -max-ticks > 0")
		os.Exit(2)
	}

	gridPath := *gridOut
	if gridPath == "" {
		gridPath = "new.csv"
		if *obstacles {
			gridPath = "new_with_obstacles.csv"
		}
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	g, err := game.NewGameWithOptions(game.Options{
		Seed:           rngSeed,
		Logger:         logger,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}

	g.AddConfiguredFood()
	if *obstacles {
		if err := g.AddConfiguredObstacles(); err != nil {
			slog.Error("failed to place obstacles", "error", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	limit := int32(*maxTicks)
	switch {
	case *headless:
		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"max_ticks", limit,
			"steps_per_update", *stepsPerUpdate,
			"obstacles", *obstacles,
		)
		for g.Tick() < limit && ctx.Err() == nil {
			g.Update()
		}
		slog.Info("simulation stopped", "tick", g.Tick(), "nuclei", g.NucleusCount())

	case *terminal:
		err = runTerminal(ctx, g, limit, *sound, cfg.Screen.TargetFPS)

	default:
		runWindow(g, limit, cfg)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "error", err)
	}

	if err := g.ExportForceGrid(gridPath); err != nil {
		slog.Error("failed to export force grid", "error", err)
	}
	if err := g.Unload(); err != nil {
		slog.Error("failed to write results", "error", err)
	}
}

func runTerminal(ctx context.Context, g *game.Game, limit int32, sound bool, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var chime *tui.Chime
	if sound {
		chime = tui.NewChime(0.3)
		if err := chime.Init(); err != nil {
			slog.Warn("audio unavailable", "error", err)
		}
		defer chime.Close()
	}

	if fps <= 0 {
		fps = 20
	}
	return tui.NewViewer(screen, g, chime).Run(ctx, limit, time.Second/time.Duration(fps))
}

func runWindow(g *game.Game, limit int32, cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Slime Mold")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	view := renderer.NewView(g, slog.Default())
	defer view.Unload()

	for !rl.WindowShouldClose() {
		view.HandleInput()
		g.Update()
		view.Update()
		view.Draw()

		if limit > 0 && g.Tick() >= limit {
			break
		}
	}
}

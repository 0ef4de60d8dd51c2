package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/duopong/audio"
	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/render"
	"github.com/lguibr/duopong/server"
	"github.com/lguibr/duopong/utils"
	"golang.org/x/sync/errgroup"
)

const (
	askTimeout      = 2 * time.Second
	shutdownTimeout = 3 * time.Second
	asciiCols       = 80
	asciiRows       = 24
	asciiInterval   = 100 * time.Millisecond
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "duopong:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file (defaults apply to missing keys)")
	seed := flag.Int64("seed", 0, "random seed, 0 derives one")
	addr := flag.String("addr", ":3001", "HTTP listen address, empty disables the server")
	ui := flag.String("ui", "tui", "front end: tui, ascii or headless")
	mute := flag.Bool("mute", false, "disable audio cues")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides the config)")
	logFile := flag.String("log-file", "", "write logs to this file")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch *ui {
	case "tui", "ascii", "headless":
	default:
		return fmt.Errorf("unknown -ui %q", *ui)
	}

	level, _ := utils.ParseLogLevel(cfg.LogLevel)
	logOut, closeLog, err := logWriter(*logFile, *ui)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := utils.SetupLogging(logOut, level)

	if cfg.Seed == 0 {
		cfg.Seed = utils.DeriveSeed()
	}
	logger.Info("starting", "ui", *ui, "addr", *addr, "seed", cfg.Seed)

	sim, err := game.NewSimulation(cfg, utils.NewRandomSource(cfg.Seed), utils.NewLogger("simulation"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	engine := bollywood.NewEngine()
	defer engine.Shutdown(shutdownTimeout)

	broadcasterPID := engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer()))
	gamePID := engine.Spawn(bollywood.NewProps(
		game.NewGameActorProducer(engine, sim, broadcasterPID, cfg.TickPeriod, cancel),
	))
	dispatch := func(msg interface{}) { engine.Send(gamePID, msg, nil) }

	addSink := func(sink game.SnapshotSink) error {
		if _, err := engine.Ask(broadcasterPID, game.AddSink{Sink: sink}, askTimeout); err != nil {
			return fmt.Errorf("register %s: %w", sink.ID(), err)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)

	if *addr != "" {
		srv := server.New(engine, gamePID, broadcasterPID, cfg)
		g.Go(func() error { return srv.ListenAndServe(gctx, *addr) })
	}

	if *ui != "headless" && !*mute {
		if err := addSink(audio.NewCuePlayer(false)); err != nil {
			return err
		}
	}

	switch *ui {
	case "tui":
		tui := render.NewTUI(dispatch)
		if err := addSink(tui); err != nil {
			return err
		}
		g.Go(func() error {
			defer cancel()
			return tui.Run()
		})
		g.Go(func() error {
			<-gctx.Done()
			tui.Stop()
			return nil
		})

	case "ascii":
		runner := render.NewASCIIRunner(os.Stdout, asciiCols, asciiRows, asciiInterval)
		if err := addSink(runner); err != nil {
			return err
		}
		dispatch(game.PlayCommand{})
		g.Go(func() error { return runner.Run(gctx.Done()) })

	case "headless":
		dispatch(game.PlayCommand{})
		g.Go(func() error {
			<-gctx.Done()
			return nil
		})
	}

	err = g.Wait()
	logger.Info("shutting down", "error", err)
	return err
}

// logWriter picks the log destination. The TUI owns the terminal, so without
// a log file its logs are dropped.
func logWriter(path, ui string) (io.Writer, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	if ui == "tui" {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/terminal"
)

// runBackdrop mounts the backdrop on the terminal until a quit key or signal
func runBackdrop(cmd *cobra.Command, args []string) error {
	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}

	host, err := terminal.New(ts, terminal.Options{
		Background: cfg.Background,
		Opacity:    cfg.Opacity,
		ColorMode:  terminal.ParseColorMode(cfg.ColorMode),
		Logger:     logger.Named("terminal"),
	})
	if err != nil {
		return err
	}
	defer host.Fini()

	// Restore the terminal before reporting a crash on the frame goroutine
	core.SetCrashHandler(func(r any) {
		host.Fini()
		logger.Error("backdrop crashed", zap.Any("panic", r), zap.Stack("stack"))
		_ = logger.Sync()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mPARTICLE-FIELD CRASHED: %v\x1b[0m\nStack Trace:\n%s\n", r, debug.Stack())
		os.Exit(1)
	})
	defer core.SetCrashHandler(nil)

	backdrop := engine.NewComponent(host, host.View(), engine.Options{
		Interval: cfg.FrameInterval,
		Rand:     newRand(cfg.Seed),
		Logger:   logger.Named("engine"),
	})
	backdrop.Mount()
	defer backdrop.Unmount()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return host.Pump(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		host.Interrupt()
		return nil
	})

	err = g.Wait()
	logger.Info("backdrop stopped", zap.Uint64("ticks", backdrop.Ticks()), zap.Error(err))
	return err
}

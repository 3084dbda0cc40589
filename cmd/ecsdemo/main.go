package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/ecscore/internal/config"
	"github.com/zeusync/ecscore/internal/core/observability/log"
	"github.com/zeusync/ecscore/internal/injector"
	"github.com/zeusync/ecscore/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "ecsdemo:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	rt, cleanup, err := injector.InitializeRuntime(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var hub *telemetry.Hub
	var publisher Publisher
	if cfg.Telemetry.Enabled {
		hub = telemetry.NewHub(rt.Logger)
		publisher = hub
	}

	d := newDemo(rt, publisher)
	d.spawn()

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, loopDone := context.WithCancel(gctx)
	if hub != nil {
		g.Go(func() error {
			return hub.Serve(loopCtx, cfg.Telemetry.Addr)
		})
	}
	g.Go(func() error {
		defer loopDone()
		return d.run(loopCtx)
	})

	err = g.Wait()
	d.shutdown()
	if err != nil {
		rt.Logger.Error("demo stopped with error", log.Error(err))
	}
	return err
}

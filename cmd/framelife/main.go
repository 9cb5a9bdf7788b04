package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"framelife/internal/app"
	"framelife/internal/core"
	"framelife/internal/display"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sim, err := app.NewSim(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("seeded %s on %dx%d with %d live cells", cfg.Pattern, cfg.Width, cfg.Height, sim.Population())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	pacer := core.NewPacer(cfg.Delay)

	switch cfg.Display {
	case app.DisplayWindow:
		err = app.RunWindow(ctx, *cfg, sim)
	case app.DisplayTerminal:
		term, terr := display.NewTerminal()
		if terr != nil {
			log.Fatalf("terminal display: %v", terr)
		}
		err = app.Run(ctx, sim, term, pacer)
		term.Close()
	case app.DisplayHeadless:
		err = app.Run(ctx, sim, display.NewHeadless(0), pacer)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := sim.Finish(cfg.Export); err != nil {
		log.Fatal(err)
	}
	if cfg.Export != "" {
		log.Printf("exported %s", cfg.Export)
	}
	log.Printf("stopped at generation %d with %d live cells", sim.Generation(), sim.Population())
}

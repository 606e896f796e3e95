//go:build ebiten

// Command ising-view animates a single Ising lattice under Metropolis
// sweeps. Build with -tags ebiten.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"ising/internal/app"
	"ising/internal/core"
	_ "ising/internal/sims/ising"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["ising"]
	if !ok {
		log.Fatal("ising sim not registered")
	}
	sim := factory(cfg.SimParams())

	hudWidth := cfg.HUDWidth
	if hudWidth < 0 {
		hudWidth = 0
	}
	game := app.New(sim, cfg.Scale, hudWidth, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("ising-view: T=" + cfg.SimParams()["temp"])
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+hudWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("%+v", err)
	}
}

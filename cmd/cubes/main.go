package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"nd-life/internal/app"
	"nd-life/internal/seed"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cubes: ")

	if err := run(flag.CommandLine, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(fs *flag.FlagSet, args []string, out io.Writer) error {
	cfg, err := app.ParseFlags(fs, args)
	if err != nil {
		return err
	}

	var pattern *seed.Pattern
	if !cfg.Random {
		pattern, err = seed.Load(cfg.Input)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
	}

	progress := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		progress = log.New(os.Stderr, "cubes: ", log.Ltime|log.Lmicroseconds)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := app.Run(ctx, cfg, pattern, progress)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintln(out, r)
	}
	return nil
}

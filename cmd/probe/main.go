package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/drakos74/phone-probe/internal/config"
	"github.com/drakos74/phone-probe/internal/probe"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	workers := flag.Int("workers", 1, "number of parallel extraction workers")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-workers N] <config.yaml>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "run binary classification probes")
		flag.PrintDefaults()
	}
	if len(os.Args) == 1 {
		flag.Usage()
		os.Exit(1)
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("error loading config: %s", err.Error())
	}

	run := uuid.New().String()
	zlog.Info().
		Str("run", run).
		Str("task", string(cfg.Task)).
		Str("classifier", string(cfg.Classifier)).
		Int("context_size", cfg.ContextSize).
		Int("workers", *workers).
		Msg("starting probe run")

	scores, err := probe.New(cfg, *workers).Run()
	if err != nil {
		log.Fatalf("error running probes: %s", err.Error())
	}
	probe.Render(os.Stdout, scores)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/config"
	"github.com/domino14/crossfill/dataloaders"
	"github.com/domino14/crossfill/filler"
	"github.com/domino14/crossfill/render"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.Debug {
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger

	if cfg.StructurePath == "" || cfg.WordsPath == "" {
		fmt.Fprintln(os.Stderr, "usage: crossfill -structure <file> -words <file> [-output <file.png>]")
		os.Exit(2)
	}

	xw, err := dataloaders.LoadStructure(cfg.StructurePath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading structure")
	}
	words, err := dataloaders.LoadWords(cfg.WordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading word list")
	}

	s := &filler.Solver{}
	err = s.Init(xw, words, filler.Config{ShowSteps: cfg.ShowSteps, MaxNodes: cfg.MaxNodes})
	if err != nil {
		log.Fatal().Err(err).Msg("initializing solver")
	}

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	assignment, err := s.Solve(ctx)
	elapsed := time.Since(start)
	switch {
	case errors.Is(err, filler.ErrNoSolution):
		fmt.Println("No solution.")
		os.Exit(1)
	case err != nil:
		log.Fatal().Err(err).Uint64("nodes", s.Nodes()).Msg("search aborted")
	}
	log.Debug().Uint64("nodes", s.Nodes()).
		Float64("time-elapsed-sec", elapsed.Seconds()).Msg("solve-returning")

	fmt.Print(render.Text(xw, assignment))
	if cfg.OutputPath != "" {
		if err := render.SaveImage(cfg.OutputPath, xw, assignment); err != nil {
			log.Fatal().Err(err).Msg("saving image")
		}
	}
}

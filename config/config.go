package config

import (
	"time"

	"github.com/namsral/flag"
)

type Config struct {
	StructurePath string
	WordsPath     string
	OutputPath    string
	MaxNodes      uint64
	Timeout       time.Duration
	ShowSteps     bool
	Debug         bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("crossfill", flag.ContinueOnError)
	fs.StringVar(&c.StructurePath, "structure", "", "path to the crossword structure file")
	fs.StringVar(&c.WordsPath, "words", "", "path to the word list file")
	fs.StringVar(&c.OutputPath, "output", "", "optional path to save the solved grid as a PNG")
	fs.Uint64Var(&c.MaxNodes, "max-nodes", 0, "abort the search after this many nodes; 0 means unlimited")
	fs.DurationVar(&c.Timeout, "timeout", 0, "abort the search after this long; 0 means no timeout")
	fs.BoolVar(&c.ShowSteps, "show-steps", false, "log every domain pruning step")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	err := fs.Parse(args)
	return err
}

// Package shell is an interactive front end for the filler: load a
// structure and a word list, solve, and inspect or save the result.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/config"
	"github.com/domino14/crossfill/dataloaders"
	"github.com/domino14/crossfill/filler"
	"github.com/domino14/crossfill/render"
	"github.com/domino14/crossfill/xword"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	xw       *xword.Crossword
	words    []string
	solution filler.Assignment
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcrossfill>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.l.Stderr(), msg)
	io.WriteString(sc.l.Stderr(), "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <path> - load a crossword structure file\n")
	io.WriteString(w, "words <path> - load a word list file\n")
	io.WriteString(w, "solve [maxnodes] - fill the grid; optionally cap search nodes\n")
	io.WriteString(w, "show - print the last solution\n")
	io.WriteString(w, "save <path.png> - save the last solution as a PNG\n")
	io.WriteString(w, "exit - quit\n")
}

func (sc *ShellController) loadStructure(path string) error {
	xw, err := dataloaders.LoadStructure(path)
	if err != nil {
		return err
	}
	sc.xw = xw
	sc.solution = nil
	sc.showMessage(fmt.Sprintf("Loaded %dx%d structure with %d slots",
		xw.Height(), xw.Width(), len(xw.Variables())))
	return nil
}

func (sc *ShellController) loadWords(path string) error {
	words, err := dataloaders.LoadWords(path)
	if err != nil {
		return err
	}
	sc.words = words
	sc.solution = nil
	sc.showMessage(fmt.Sprintf("Loaded %d words", len(words)))
	return nil
}

func (sc *ShellController) solve(args []string) error {
	if sc.xw == nil {
		return errors.New("please load a structure first with the `load` command")
	}
	if sc.words == nil {
		return errors.New("please load a word list first with the `words` command")
	}
	maxNodes := sc.cfg.MaxNodes
	if len(args) > 0 {
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("badly formatted node count: %v", args[0])
		}
		maxNodes = n
	}

	s := &filler.Solver{}
	err := s.Init(sc.xw, sc.words, filler.Config{
		ShowSteps: sc.cfg.ShowSteps,
		MaxNodes:  maxNodes,
	})
	if err != nil {
		return err
	}
	assignment, err := s.Solve(context.Background())
	switch {
	case errors.Is(err, filler.ErrNoSolution):
		sc.showMessage("No solution.")
		return nil
	case errors.Is(err, filler.ErrNodeBudget):
		sc.showMessage(fmt.Sprintf("Gave up after %d nodes.", s.Nodes()))
		return nil
	case err != nil:
		return err
	}
	sc.solution = assignment
	log.Debug().Uint64("nodes", s.Nodes()).Msg("solved")
	sc.showMessage(render.Text(sc.xw, assignment))
	return nil
}

func (sc *ShellController) show() error {
	if sc.solution == nil {
		return errors.New("no solution yet; run `solve` first")
	}
	sc.showMessage(render.Text(sc.xw, sc.solution))
	return nil
}

func (sc *ShellController) save(path string) error {
	if sc.solution == nil {
		return errors.New("no solution yet; run `solve` first")
	}
	if err := render.SaveImage(path, sc.xw, sc.solution); err != nil {
		return err
	}
	sc.showMessage("Saved image to " + path)
	return nil
}

// handle dispatches one command line and reports whether the shell
// should exit.
func (sc *ShellController) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "exit", "bye":
		return true
	case "help":
		usage(sc.l.Stderr())
	case "load":
		if len(args) != 1 {
			err = errors.New("usage: load <path>")
		} else {
			err = sc.loadStructure(args[0])
		}
	case "words":
		if len(args) != 1 {
			err = errors.New("usage: words <path>")
		} else {
			err = sc.loadWords(args[0])
		}
	case "solve":
		err = sc.solve(args)
	case "show":
		err = sc.show()
	case "save":
		if len(args) != 1 {
			err = errors.New("usage: save <path.png>")
		} else {
			err = sc.save(args[0])
		}
	default:
		err = fmt.Errorf("unknown command %q; try `help`", cmd)
	}
	if err != nil {
		sc.showError(err)
	}
	return false
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if sc.handle(strings.TrimSpace(line)) {
			break
		}
	}
	sig <- syscall.SIGINT
}

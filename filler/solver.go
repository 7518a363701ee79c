// Package filler implements the constraint-satisfaction engine that
// fills a crossword structure with dictionary words. Each slot is a
// variable; unary length constraints and binary crossing constraints
// prune candidate domains (AC-3), and backtracking search with the
// minimum-remaining-values and degree heuristics resolves the rest.
package filler

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/crossfill/xword"
)

var (
	// ErrNoSolution is returned when the puzzle is well-formed but no
	// assignment of dictionary words satisfies every constraint. It is
	// an expected outcome, not a fault.
	ErrNoSolution = errors.New("no solution found")
	// ErrNodeBudget is returned when the search exceeded its node
	// budget before finding a solution or proving there is none.
	ErrNodeBudget = errors.New("node budget exceeded")
)

// Status tracks the solver through its phases. Arc consistency may
// jump straight to Unsatisfiable if it empties a domain.
type Status uint8

const (
	NotStarted Status = iota
	NodeConsistent
	ArcConsistent
	Searching
	Solved
	Unsatisfiable
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case NodeConsistent:
		return "node-consistent"
	case ArcConsistent:
		return "arc-consistent"
	case Searching:
		return "searching"
	case Solved:
		return "solved"
	case Unsatisfiable:
		return "unsatisfiable"
	}
	return "unknown"
}

// Config carries caller-visible solver settings. The zero value means
// no step tracing and no node budget.
type Config struct {
	// ShowSteps emits a debug log line for every domain revision.
	ShowSteps bool
	// MaxNodes bounds the number of search nodes visited; 0 means
	// unlimited. Exceeding it surfaces ErrNodeBudget, which says
	// nothing about satisfiability.
	MaxNodes uint64
}

// An Assignment maps each variable to its chosen word. A complete one
// covers every variable in the puzzle.
type Assignment map[xword.Variable]string

// Domains maps each variable to the candidate words still considered
// possible for it, in a fixed sorted order.
type Domains map[xword.Variable][]string

func (d Domains) clone() Domains {
	nd := make(Domains, len(d))
	for v, words := range d {
		cp := make([]string, len(words))
		copy(cp, words)
		nd[v] = cp
	}
	return nd
}

type arc struct {
	x, y xword.Variable
}

// Solver fills one crossword from one dictionary. It owns its domains
// for the duration of a solve; a Solver must not be shared across
// concurrent solves, and Solve is a from-scratch run each time.
type Solver struct {
	xw      *xword.Crossword
	domains Domains
	cfg     Config

	status Status
	nodes  uint64
}

// Init prepares the solver for a crossword and word list. Words must
// already be normalized (the solver compares them byte for byte);
// duplicates collapse.
func (s *Solver) Init(xw *xword.Crossword, words []string, cfg Config) error {
	if xw == nil {
		return errors.New("no crossword structure provided")
	}
	s.xw = xw
	s.cfg = cfg
	s.status = NotStarted
	s.nodes = 0

	candidates := lo.Uniq(words)
	sort.Strings(candidates)

	s.domains = make(Domains, len(xw.Variables()))
	for _, v := range xw.Variables() {
		dom := make([]string, len(candidates))
		copy(dom, candidates)
		s.domains[v] = dom
	}
	return nil
}

// Status reports which phase the last (or current) solve reached.
func (s *Solver) Status() Status {
	return s.status
}

// Nodes reports how many search nodes the last solve visited.
func (s *Solver) Nodes() uint64 {
	return s.nodes
}

// Domain returns the candidates currently held for v. Exposed for
// inspection and tests; callers must not mutate the slice.
func (s *Solver) Domain(v xword.Variable) []string {
	return s.domains[v]
}

// Solve runs node consistency, arc consistency to fixpoint, and then
// backtracking search. On success the returned assignment is complete;
// otherwise the error is ErrNoSolution, ErrNodeBudget, or the
// context's error if the caller canceled.
func (s *Solver) Solve(ctx context.Context) (Assignment, error) {
	if s.xw == nil {
		return nil, errors.New("solver not initialized")
	}

	s.enforceNodeConsistency()
	s.status = NodeConsistent

	if !s.ac3(s.allArcs(), s.domains) {
		s.status = Unsatisfiable
		log.Debug().Msg("domain emptied during initial pruning")
		return nil, ErrNoSolution
	}
	s.status = ArcConsistent

	s.status = Searching
	assignment, err := s.backtrack(ctx, Assignment{}, s.domains)
	if err != nil {
		if errors.Is(err, ErrNoSolution) {
			s.status = Unsatisfiable
		}
		return nil, err
	}
	s.status = Solved
	log.Debug().Uint64("nodes", s.nodes).Msg("solve-done")
	return assignment, nil
}

// enforceNodeConsistency drops every candidate whose length differs
// from its variable's length. Unary constraints only; crossings are
// not inspected here.
func (s *Solver) enforceNodeConsistency() {
	for _, v := range s.xw.Variables() {
		length := v.Length
		s.domains[v] = lo.Filter(s.domains[v], func(w string, _ int) bool {
			return len(w) == length
		})
	}
}

// allArcs returns every ordered crossing pair in canonical order, so
// pruning is reproducible run to run.
func (s *Solver) allArcs() []arc {
	var arcs []arc
	for _, x := range s.xw.Variables() {
		for _, y := range s.xw.Neighbors(x) {
			arcs = append(arcs, arc{x, y})
		}
	}
	return arcs
}

// revise removes from domains[x] every word with no crossing-compatible
// partner left in domains[y]. Reports whether anything was removed.
func (s *Solver) revise(x, y xword.Variable, domains Domains) bool {
	xi, yi, ok := s.xw.OverlapOffsets(x, y)
	if !ok {
		panic(fmt.Sprintf("revise called on non-crossing pair %v / %v", x, y))
	}

	kept := domains[x][:0]
	revised := false
	for _, wx := range domains[x] {
		supported := false
		for _, wy := range domains[y] {
			if wx[xi] == wy[yi] {
				supported = true
				break
			}
		}
		if supported {
			kept = append(kept, wx)
		} else {
			revised = true
			if s.cfg.ShowSteps {
				log.Debug().Stringer("variable", x).Str("word", wx).
					Stringer("against", y).Msg("pruned")
			}
		}
	}
	domains[x] = kept
	return revised
}

// ac3 enforces arc consistency over the given worklist, to fixpoint.
// Returns false if any domain empties, which makes the whole puzzle
// unsatisfiable under the current domains.
func (s *Solver) ac3(arcs []arc, domains Domains) bool {
	// The worklist is consumed in order; order affects running time
	// only, never the resulting fixpoint.
	for len(arcs) > 0 {
		a := arcs[0]
		arcs = arcs[1:]
		if !s.revise(a.x, a.y, domains) {
			continue
		}
		if len(domains[a.x]) == 0 {
			return false
		}
		for _, z := range s.xw.Neighbors(a.x) {
			if z != a.y {
				arcs = append(arcs, arc{z, a.x})
			}
		}
	}
	return true
}

// consistent reports whether assigning word to v violates any
// constraint against the already-assigned variables: words must be
// pairwise distinct across the puzzle and every assigned crossing must
// agree on the shared letter. Length is already guaranteed by node
// consistency.
func (s *Solver) consistent(v xword.Variable, word string, assignment Assignment) bool {
	for _, used := range assignment {
		if used == word {
			return false
		}
	}
	for _, n := range s.xw.Neighbors(v) {
		nw, assigned := assignment[n]
		if !assigned {
			continue
		}
		vi, ni, ok := s.xw.OverlapOffsets(v, n)
		if !ok {
			panic(fmt.Sprintf("neighbor %v of %v has no overlap entry", n, v))
		}
		if word[vi] != nw[ni] {
			return false
		}
	}
	return true
}

// selectUnassigned picks the next variable to try: fewest remaining
// candidates first (MRV), then most crossings with other unassigned
// variables (degree), then canonical order.
func (s *Solver) selectUnassigned(assignment Assignment, domains Domains) xword.Variable {
	var best xword.Variable
	bestSize, bestDegree := -1, -1
	for _, v := range s.xw.Variables() {
		if _, assigned := assignment[v]; assigned {
			continue
		}
		size := len(domains[v])
		degree := lo.CountBy(s.xw.Neighbors(v), func(n xword.Variable) bool {
			_, assigned := assignment[n]
			return !assigned
		})
		if bestSize == -1 || size < bestSize ||
			(size == bestSize && degree > bestDegree) {
			best, bestSize, bestDegree = v, size, degree
		}
	}
	if bestSize == -1 {
		panic("selectUnassigned called on a complete assignment")
	}
	return best
}

// backtrack runs depth-first search over the pruned domains. Domains
// are cloned per branch so sibling branches never observe each other's
// pruning; the assignment map is restored explicitly on failure.
func (s *Solver) backtrack(ctx context.Context, assignment Assignment, domains Domains) (Assignment, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if len(assignment) == len(s.xw.Variables()) {
		return assignment, nil
	}

	s.nodes++
	if s.cfg.MaxNodes > 0 && s.nodes > s.cfg.MaxNodes {
		return nil, ErrNodeBudget
	}

	v := s.selectUnassigned(assignment, domains)
	// Candidates are tried in the domain's stored (sorted) order; no
	// value-ordering heuristic.
	for _, word := range domains[v] {
		if !s.consistent(v, word, assignment) {
			continue
		}
		assignment[v] = word

		// Maintain arc consistency incrementally: narrow v's domain to
		// the chosen word on a branch-local copy and re-propagate from
		// its neighbors. If a domain empties the branch is dead before
		// any deeper node is visited.
		branch := domains.clone()
		branch[v] = []string{word}
		arcs := make([]arc, 0, len(s.xw.Neighbors(v)))
		for _, n := range s.xw.Neighbors(v) {
			arcs = append(arcs, arc{n, v})
		}
		if s.ac3(arcs, branch) {
			result, err := s.backtrack(ctx, assignment, branch)
			if err == nil {
				return result, nil
			}
			if !errors.Is(err, ErrNoSolution) {
				return nil, err
			}
		}
		delete(assignment, v)
	}
	return nil, ErrNoSolution
}

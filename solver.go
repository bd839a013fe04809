package cfop

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mackworth/cfop/internal/arena"
)

// defaultArenaSize fits the cross search scratch: the 4 MiB visited
// array, the frontier queue and the move log, with headroom.
const defaultArenaSize = 8 << 20

// Solver solves cubes with the CFOP method: Cross, F2L, OLL, PLL. It
// owns an arena for search scratch, so a single Solver must not be used
// from multiple goroutines; independent Solvers are safe concurrently.
type Solver struct {
	arena       *arena.Arena
	logger      zerolog.Logger
	scrambleLen int
}

// NewSolver creates a solver.
func NewSolver(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{
		arena:       arena.New(cfg.arenaSize),
		logger:      cfg.logger,
		scrambleLen: cfg.scrambleLen,
	}
}

// StageResult records one pipeline stage's contribution to a solve.
type StageResult struct {
	Name    string
	Turns   []Turn
	Elapsed time.Duration
}

// Report is the outcome of a solve: the tidied turn sequence and the
// per-stage breakdown. Because tidying can merge a stage's first turn
// into the previous stage's last, the per-stage turn counts can sum to
// slightly more than the total.
type Report struct {
	Stages  []StageResult
	Turns   []Turn
	Elapsed time.Duration
}

// Notation returns the solution in standard notation.
func (r *Report) Notation() string {
	return FormatTurns(r.Turns)
}

// Solve solves the cube in place and returns the solution report. The
// cube must be in a reachable state; an unreachable one returns
// ErrInvalidState with the cube untouched.
func (s *Solver) Solve(c *Cube) (*Report, error) {
	if !c.Valid() {
		return nil, ErrInvalidState
	}

	s.arena.Reset()
	log := newMoveLogOver(arena.Make[Turn](s.arena, moveLogCap))

	stages := []struct {
		name string
		run  func(*Solver, *Cube, *MoveLog)
	}{
		{"cross", (*Solver).solveCross},
		{"f2l", (*Solver).solveF2L},
		{"oll", (*Solver).solveOLL},
		{"pll", (*Solver).solvePLL},
	}

	report := &Report{}
	solveStart := time.Now()
	for _, stage := range stages {
		mark := log.Len()
		start := time.Now()
		stage.run(s, c, log)
		elapsed := time.Since(start)

		all := log.Turns()
		if mark > len(all) {
			mark = len(all)
		}
		turns := all[mark:]
		report.Stages = append(report.Stages, StageResult{
			Name:    stage.name,
			Turns:   turns,
			Elapsed: elapsed,
		})
		s.logger.Debug().
			Str("stage", stage.name).
			Int("turns", len(turns)).
			Dur("elapsed", elapsed).
			Msg("stage complete")
	}
	report.Turns = log.Turns()
	report.Elapsed = time.Since(solveStart)

	return report, nil
}

// solveOLL is a stub. It runs as a pipeline stage but leaves the cube
// untouched.
func (s *Solver) solveOLL(c *Cube, log *MoveLog) {}

// solvePLL is a stub, like solveOLL.
func (s *Solver) solvePLL(c *Cube, log *MoveLog) {}

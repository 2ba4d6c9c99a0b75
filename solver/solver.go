package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// sentinelScore is the engine's marker for "column not a legal continuation".
const sentinelScore = -1000

// DefaultTimeout bounds one solver invocation.
const DefaultTimeout = 10 * time.Second

var ErrMalformedOutput = errors.New("invalid solver output")

// ColumnEval is the analysis of one column. Score is nil when the engine
// emitted a token that is not an integer.
type ColumnEval struct {
	Score *int `json:"score"`
	Valid bool `json:"valid"`
}

// ColumnSet holds the per-column evaluations keyed "1".."7".
type ColumnSet struct {
	Columns map[string]ColumnEval `json:"columns"`
}

// Analysis is the full result for one position, echoing the position.
type Analysis struct {
	Position string    `json:"position"`
	Analysis ColumnSet `json:"analysis"`
}

// Solver invokes the external analyser binary, one process per call.
type Solver struct {
	Path    string
	Timeout time.Duration

	log *logrus.Entry
}

// New creates a solver for the given binary path with the default timeout.
func New(path string) *Solver {
	return &Solver{
		Path:    path,
		Timeout: DefaultTimeout,
		log:     logrus.WithField("component", "solver"),
	}
}

// DefaultPath returns the conventional solver binary location for this OS.
func DefaultPath() string {
	if runtime.GOOS == "darwin" {
		return "./c4solver-mac"
	}
	return "./c4solver"
}

// ValidPosition reports whether the position string consists only of the
// digits '1'..'7'.
func ValidPosition(position string) bool {
	for _, c := range position {
		if c < '1' || c > '7' {
			return false
		}
	}
	return true
}

// Analyse runs the analyser for one position and parses its single output
// line. The call is bounded by the solver timeout on top of ctx.
func (s *Solver) Analyse(ctx context.Context, position string) (*Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.Path, "-a")
	// Unblock Run once the process is killed even if a child of the solver
	// still holds the output pipes open.
	cmd.WaitDelay = time.Second
	cmd.Stdin = strings.NewReader(position + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("solver error: %s", msg)
	}

	fields := strings.Fields(stdout.String())
	if len(fields) < 8 {
		return nil, fmt.Errorf("%w: %d tokens", ErrMalformedOutput, len(fields))
	}

	// The first field is the engine's echo of the position; fields 1..7 are
	// the column scores.
	columns := make(map[string]ColumnEval, 7)
	for i, token := range fields[1:8] {
		eval := ColumnEval{Valid: true}
		if score, err := strconv.Atoi(token); err == nil {
			eval.Score = &score
			eval.Valid = score != sentinelScore
		}
		columns[strconv.Itoa(i+1)] = eval
	}

	s.log.WithFields(logrus.Fields{
		"position": position,
		"took":     time.Since(start),
	}).Debug("position analysed")

	return &Analysis{
		Position: position,
		Analysis: ColumnSet{Columns: columns},
	}, nil
}

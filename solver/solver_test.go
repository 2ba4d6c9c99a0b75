package solver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSolver writes an executable shell script standing in for the external
// analyser and returns its path.
func fakeSolver(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "c4solver")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestAnalyseParsesScores(t *testing.T) {
	path := fakeSolver(t, `read pos
echo "$pos 1 0 -1 -1000 3 x 2"
`)
	s := New(path)

	analysis, err := s.Analyse(context.Background(), "44")
	require.NoError(t, err)

	assert.Equal(t, "44", analysis.Position)
	require.Len(t, analysis.Analysis.Columns, 7)

	col1 := analysis.Analysis.Columns["1"]
	require.NotNil(t, col1.Score)
	assert.Equal(t, 1, *col1.Score)
	assert.True(t, col1.Valid)

	col3 := analysis.Analysis.Columns["3"]
	require.NotNil(t, col3.Score)
	assert.Equal(t, -1, *col3.Score, "negative scores are ordinary values")
	assert.True(t, col3.Valid)
}

func TestAnalyseSentinelScore(t *testing.T) {
	path := fakeSolver(t, `read pos
echo "$pos 1 0 -1 -1000 3 x 2"
`)
	s := New(path)

	analysis, err := s.Analyse(context.Background(), "1")
	require.NoError(t, err)

	col4 := analysis.Analysis.Columns["4"]
	require.NotNil(t, col4.Score)
	assert.Equal(t, -1000, *col4.Score)
	assert.False(t, col4.Valid, "-1000 marks an illegal continuation")
}

func TestAnalyseUnparsableToken(t *testing.T) {
	path := fakeSolver(t, `read pos
echo "$pos 1 0 -1 -1000 3 x 2"
`)
	s := New(path)

	analysis, err := s.Analyse(context.Background(), "1")
	require.NoError(t, err)

	col6 := analysis.Analysis.Columns["6"]
	assert.Nil(t, col6.Score)
	assert.True(t, col6.Valid)
}

func TestAnalyseShortOutput(t *testing.T) {
	path := fakeSolver(t, `echo "only three tokens"
`)
	s := New(path)

	_, err := s.Analyse(context.Background(), "1")
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestAnalyseNonzeroExit(t *testing.T) {
	path := fakeSolver(t, `echo "boom" >&2
exit 3
`)
	s := New(path)

	_, err := s.Analyse(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom", "stderr is carried in the error")
}

func TestAnalyseMissingBinary(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := s.Analyse(context.Background(), "1")
	assert.Error(t, err)
}

func TestAnalyseTimeout(t *testing.T) {
	path := fakeSolver(t, `sleep 5
`)
	s := New(path)
	s.Timeout = 100 * time.Millisecond

	start := time.Now()
	_, err := s.Analyse(context.Background(), "1")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestAnalyseTimeoutWithLingeringChild(t *testing.T) {
	// The child inherits the output pipes and outlives the killed solver;
	// the call must still return promptly.
	path := fakeSolver(t, `sleep 5 &
wait
`)
	s := New(path)
	s.Timeout = 100 * time.Millisecond

	start := time.Now()
	_, err := s.Analyse(context.Background(), "1")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestValidPosition(t *testing.T) {
	tests := []struct {
		position string
		want     bool
	}{
		{"", true},
		{"4455", true},
		{"1234567", true},
		{"0", false},
		{"8", false},
		{"44a5", false},
		{"4 5", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPosition(tt.position), "position %q", tt.position)
	}
}

func TestDefaultPath(t *testing.T) {
	assert.NotEmpty(t, DefaultPath())
}

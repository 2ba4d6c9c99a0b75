package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cfour-labs/connect4-server/solver"
)

func fakeSolver(t *testing.T, script string) *solver.Solver {
	t.Helper()

	path := filepath.Join(t.TempDir(), "c4solver")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return solver.New(path)
}

func TestAnalyzePositions(t *testing.T) {
	sv := fakeSolver(t, "#!/bin/sh\nread pos\necho \"$pos 2 1 0 -1000 0 1 x\"\n")

	var out bytes.Buffer
	err := analyzePositions(context.Background(), sv, []string{"44"}, &out)
	if err != nil {
		t.Fatalf("analyzePositions failed: %v", err)
	}

	output := out.String()
	for _, want := range []string{"Position 44", "  1: 2", "  4: full", "  7: -"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestAnalyzePositionsStart(t *testing.T) {
	sv := fakeSolver(t, "#!/bin/sh\nread pos\necho \"start 0 0 0 1 0 0 0\"\n")

	var out bytes.Buffer
	err := analyzePositions(context.Background(), sv, []string{""}, &out)
	if err != nil {
		t.Fatalf("analyzePositions failed: %v", err)
	}

	if !strings.Contains(out.String(), "Position (start)") {
		t.Errorf("Expected start placeholder, got:\n%s", out.String())
	}
}

func TestAnalyzePositionsInvalid(t *testing.T) {
	sv := fakeSolver(t, "#!/bin/sh\nexit 0\n")

	var out bytes.Buffer
	err := analyzePositions(context.Background(), sv, []string{"48"}, &out)
	if err == nil {
		t.Fatal("Expected error for invalid position")
	}

	if !strings.Contains(err.Error(), "invalid position") {
		t.Errorf("Expected invalid position error, got: %v", err)
	}
}

func TestAnalyzePositionsSolverError(t *testing.T) {
	sv := fakeSolver(t, "#!/bin/sh\nexit 1\n")

	var out bytes.Buffer
	err := analyzePositions(context.Background(), sv, []string{"4"}, &out)
	if err == nil {
		t.Fatal("Expected error when solver fails")
	}
}

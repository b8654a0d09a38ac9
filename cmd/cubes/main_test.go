package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func flags() *flag.FlagSet {
	fs := flag.NewFlagSet("cubes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestRunPrintsBothScenarios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(".#.\n..#\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	if err := run(flags(), []string{"-input", path}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Part 1 (3 dimensions) active cubes after 6 cycles: 112\n" +
		"Part 2 (4 dimensions) active cubes after 6 cycles: 848\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunMissingInput(t *testing.T) {
	err := run(flags(), []string{"-input", filepath.Join(t.TempDir(), "nope.txt")}, io.Discard)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestRunRandomSkipsInput(t *testing.T) {
	args := []string{"-random", "-seed", "3", "-width", "5", "-height", "5", "-dims", "3", "-generations", "2", "-input", "does-not-exist.txt"}

	var first, second strings.Builder
	if err := run(flags(), args, &first); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(flags(), args, &second); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(first.String(), "Part 1 (3 dimensions) active cubes after 2 cycles: ") {
		t.Fatalf("unexpected output %q", first.String())
	}
	if first.String() != second.String() {
		t.Fatalf("same seed gave different results: %q vs %q", first.String(), second.String())
	}
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"predprey/internal/config"
)

func TestRunHeadlessWritesTelemetry(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var logs bytes.Buffer
	args := []string{
		"-headless",
		"-width", "30", "-height", "20",
		"-seed", "9",
		"-population", "4",
		"-generations", "6",
		"-window", "4",
		"-output-dir", dir,
	}
	if err := run(context.Background(), args, &logs); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatalf("read generations: %v", err)
	}
	if n := len(strings.Split(strings.TrimSpace(string(data)), "\n")); n != 7 {
		t.Fatalf("generations.csv has %d lines, want 7", n)
	}
	data, err = os.ReadFile(filepath.Join(dir, "summaries.csv"))
	if err != nil {
		t.Fatalf("read summaries: %v", err)
	}
	if n := len(strings.Split(strings.TrimSpace(string(data)), "\n")); n != 3 {
		t.Fatalf("summaries.csv has %d lines, want 3", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config snapshot missing: %v", err)
	}
	if !strings.Contains(logs.String(), `"msg":"finished"`) {
		t.Fatalf("expected a finished log line, got:\n%s", logs.String())
	}
}

func TestRunRejectsUnknownSim(t *testing.T) {
	err := run(context.Background(), []string{"-headless", "-sim", "nope", "-generations", "1"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected unknown sim error, got %v", err)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	err := run(context.Background(), []string{"-headless", "-fps", "0"}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("fps 0 should be rejected")
	}
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	args := []string{"-headless", "-width", "10", "-height", "10", "-seed", "1"}
	if err := run(ctx, args, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestLifeSimKeepsLivingAtDefaults(t *testing.T) {
	cfg, err := config.Parse("test", []string{"-sim", "life", "-width", "80", "-height", "40", "-seed", "3"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sim, err := newSim(cfg)
	if err != nil {
		t.Fatalf("newSim: %v", err)
	}
	for step := 1; step <= 2; step++ {
		sim.Step()
		alive := 0
		for _, c := range sim.Cells() {
			if c != 0 {
				alive++
			}
		}
		if alive == 0 {
			t.Fatalf("life board is empty after step %d", step)
		}
	}
}

func TestRunLifeHeadless(t *testing.T) {
	args := []string{"-headless", "-sim", "life", "-width", "16", "-height", "16", "-seed", "2", "-generations", "3"}
	if err := run(context.Background(), args, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
}

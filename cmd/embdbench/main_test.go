package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"embd/contention"
	"embd/store"
)

func TestRunOnceStoresReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.db")
	cfg := contention.DefaultConfig()
	cfg.Contenders = 2
	cfg.Iterations = 100

	if err := runOnce(context.Background(), cfg, path); err != nil {
		t.Fatalf("runOnce: %v", err)
	}
	if err := printHistory(path, 0); err != nil {
		t.Fatalf("printHistory: %v", err)
	}

	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	runs, err := s.List(0)
	if err != nil || len(runs) != 1 {
		t.Fatalf("stored %d runs, %v", len(runs), err)
	}
	if runs[0].Report.Config.Contenders != 2 {
		t.Fatalf("stored config = %+v", runs[0].Report.Config)
	}
}

func TestRunOnceRejectsBadConfig(t *testing.T) {
	cfg := contention.DefaultConfig()
	cfg.FaultEvery = 1
	if err := runOnce(context.Background(), cfg, ""); !errors.Is(err, contention.ErrFaultEveryOne) {
		t.Fatalf("err = %v, want %v", err, contention.ErrFaultEveryOne)
	}
}

func TestRootWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	if !names["run"] || !names["history"] {
		t.Fatalf("subcommands = %v", names)
	}
	if f := runCmd.Flags().Lookup("fault-every"); f == nil {
		t.Fatal("run has no --fault-every flag")
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"embd/contention"
	"embd/debug"
	"embd/store"
	"embd/utils"
)

var errBrokenRun = errors.New("run broke exclusivity")

var (
	runCfg  = contention.DefaultConfig()
	runMode string

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Race contenders and report what they observed",
		RunE: func(cmd *cobra.Command, args []string) error {
			runCfg.Mode = contention.Mode(runMode)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runOnce(ctx, runCfg, dbPath)
		},
	}
)

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runMode, "mode", "m", string(runCfg.Mode), "what to race on (spinlock|cas)")
	f.IntVarP(&runCfg.Contenders, "contenders", "c", runCfg.Contenders, "number of racing goroutines")
	f.IntVarP(&runCfg.Iterations, "iterations", "n", runCfg.Iterations, "attempts per contender")
	f.Uint32Var(&runCfg.MaxSpin, "max-spin", runCfg.MaxSpin, "spinlock acquire bound in attempts")
	f.Uint64Var(&runCfg.FaultEvery, "fault-every", 0, "lose every n-th reservation (0 disables, 1 is rejected)")
	f.BoolVar(&runCfg.SingleCore, "single-core", false, "use the single-core backend (one contender only)")
	f.BoolVar(&runCfg.Pin, "pin", false, "pin each contender to its own CPU")
}

func runOnce(ctx context.Context, cfg contention.Config, path string) error {
	rep, err := contention.Run(ctx, cfg)
	if err != nil {
		return err
	}

	out, err := sonnet.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	utils.PrintInfo(utils.B2s(out) + "\n")

	if path != "" {
		s, err := store.Open(path)
		if err != nil {
			return err
		}
		defer s.Close()
		id, err := s.Save(rep)
		if err != nil {
			return err
		}
		debug.DropMessage("embdbench", "stored run "+utils.Itoa(int(id))+" in "+path)
	}

	if !rep.OK() {
		return errBrokenRun
	}
	return nil
}

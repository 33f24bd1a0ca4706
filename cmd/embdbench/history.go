package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"embd/store"
	"embd/utils"
)

var (
	historyLimit int

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Print stored run reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printHistory(dbPath, historyLimit)
		},
	}
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum runs to print (0 for all)")
}

func printHistory(path string, limit int) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.List(limit)
	if err != nil {
		return err
	}
	for _, e := range runs {
		out, err := sonnet.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode run %d: %w", e.ID, err)
		}
		utils.PrintInfo(utils.B2s(out) + "\n")
	}
	return nil
}

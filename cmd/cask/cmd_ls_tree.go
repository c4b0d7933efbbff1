package main

import (
	"fmt"

	"github.com/caskvc/cask/pkg/object"
	"github.com/caskvc/cask/pkg/repo"
	"github.com/spf13/cobra"
)

func newLsTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls-tree <hash>",
		Short: "List the entries of a tree object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			tree, err := r.Store.GetTree(object.Hash(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range tree.Entries {
				fmt.Fprintf(out, "%s %s %s\t%s\n", e.Mode, e.Type, e.Sha, e.Path)
			}
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/caskvc/cask/pkg/object"
	"github.com/caskvc/cask/pkg/repo"
	"github.com/spf13/cobra"
)

func newHashObjectCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "hash-object [-w] <file>",
		Short: "Compute a file's blob hash, optionally storing the object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := object.GenerateBlob(args[0])
			if err != nil {
				return err
			}

			if write {
				r, err := repo.Open(".")
				if err != nil {
					return err
				}
				if _, err := r.StoreBlob(blob); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), blob.Sha)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "store the object in the repository")
	return cmd
}

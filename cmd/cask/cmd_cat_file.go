package main

import (
	"fmt"

	"github.com/caskvc/cask/pkg/object"
	"github.com/caskvc/cask/pkg/repo"
	"github.com/spf13/cobra"
)

func newCatFileCmd() *cobra.Command {
	var showType, showSize, pretty bool

	cmd := &cobra.Command{
		Use:   "cat-file (-t | -s | -p) <hash>",
		Short: "Print a stored object's type, size, or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			h := object.Hash(args[0])
			out := cmd.OutOrStdout()

			typ, size, err := r.Store.Stat(h)
			if err != nil {
				return err
			}

			switch {
			case showType:
				fmt.Fprintln(out, typ)
				return nil
			case showSize:
				fmt.Fprintln(out, size)
				return nil
			}

			// -p, and the default when no flag is given.
			switch typ {
			case object.TypeBlob:
				blob, err := r.Store.GetBlob(h)
				if err != nil {
					return err
				}
				_, werr := out.Write(blob.Content)
				return werr
			case object.TypeTree:
				tree, err := r.Store.GetTree(h)
				if err != nil {
					return err
				}
				for _, e := range tree.Entries {
					fmt.Fprintf(out, "%s %s %s\t%s\n", e.Mode, e.Type, e.Sha, e.Path)
				}
				return nil
			default:
				return fmt.Errorf("cat-file %s: unknown object type %q", h, typ)
			}
		},
	}

	cmd.Flags().BoolVarP(&showType, "type", "t", false, "print the object's type")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "print the object's payload size in bytes")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "pretty-print the object's content (the default)")
	cmd.MarkFlagsMutuallyExclusive("type", "size", "pretty")
	return cmd
}

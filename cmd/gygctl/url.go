package main

import (
	"fmt"

	"github.com/InQaaaaGit/gyg.git/internal/links"
	"github.com/spf13/cobra"
)

func urlCmd(opts *options) *cobra.Command {
	var (
		basePath string
		rewrite  bool
	)

	cmd := &cobra.Command{
		Use:   "url <file>",
		Short: "Print the file controller URL of a controller asset",
		Long: `Print the URL under which the file controller serves a file
from the controllers directory, e.g. controllers/example/img/gyg.svg.
Files outside the controllers directory are rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := links.Builder{BasePath: basePath, Rewrite: rewrite}
			u, err := l.PathToURL(opts.controllersPath, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}

	cmd.Flags().StringVarP(&basePath, "base", "b", "", "site base path")
	cmd.Flags().BoolVarP(&rewrite, "rewrite", "r", true, "build rewrite-mode URLs instead of query-mode")

	return cmd
}

package main

import (
	"fmt"
	"runtime"

	"github.com/InQaaaaGit/gyg.git/internal/buildinfo"
	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.New(buildVersion, buildDate, buildCommit)
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Version)
				return err
			}

			if err := info.Fprint(cmd.OutOrStdout()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
			return err
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only version number")

	return cmd
}

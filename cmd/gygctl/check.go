package main

import (
	"fmt"

	"github.com/InQaaaaGit/gyg.git/internal/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate whitelist, shortcuts and controller registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.toConfig()
			if err != nil {
				return err
			}

			store, rt, err := app.Bootstrap(cfg)
			if err != nil {
				return err
			}
			if err := app.NewDispatcher(cfg, store, zap.NewNop()).Validate(store); err != nil {
				return fmt.Errorf("error validating controllers: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "whitelist %s is valid\n", cfg.WhitelistFile)
			for _, c := range store.Controllers() {
				fmt.Fprintf(out, "  controller %-16s %s\n", c.ID, state(c.Enabled))
			}
			for _, s := range store.Shortcuts() {
				if !s.Enabled {
					fmt.Fprintf(out, "  shortcut   %-16s %s\n", s.ID, state(false))
					continue
				}
				req, err := rt.ResolveRaw(s.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  shortcut   %-16s -> %s\n", s.ID, req)
			}
			return nil
		},
	}
}

func state(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

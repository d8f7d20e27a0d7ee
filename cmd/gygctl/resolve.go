package main

import (
	"fmt"
	"strings"

	"github.com/InQaaaaGit/gyg.git/internal/app"
	"github.com/InQaaaaGit/gyg.git/internal/dispatch"
	"github.com/spf13/cobra"
)

func resolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [request]",
		Short: "Print how a raw request resolves",
		Long: `Print controller, page, arguments and controller entry path
for a raw request such as "example/mars" or "mars".
An empty or missing request resolves to the default controller.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.toConfig()
			if err != nil {
				return err
			}

			_, rt, err := app.Bootstrap(cfg)
			if err != nil {
				return err
			}

			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}

			req, err := rt.ResolveRaw(raw)
			if err != nil {
				return err
			}

			page := "-"
			if req.HasPage {
				page = fmt.Sprintf("%q", req.Page)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "controller: %s\n", req.Controller)
			fmt.Fprintf(out, "page:       %s\n", page)
			fmt.Fprintf(out, "args:       [%s]\n", strings.Join(req.Args, ", "))
			fmt.Fprintf(out, "entry:      %s\n", dispatch.ControllerEntryPath(req.Controller, cfg.ControllersPath))
			return nil
		},
	}
}

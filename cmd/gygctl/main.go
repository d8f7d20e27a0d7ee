// Gygctl проверяет белый список фронт-контроллера и показывает,
// как разрешаются запросы, без запуска сервера.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Заполняются при сборке через -ldflags
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()

	rootCmd := &cobra.Command{
		Use:   "gygctl",
		Short: "Inspect gyg whitelist and request routing",
		Long: `gygctl loads the whitelist the same way the gyg server does.

It validates controllers and shortcut chains and prints how a raw
request resolves to controller, page and arguments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.whitelistFile, "whitelist", "w", opts.whitelistFile, "whitelist JSON file")
	flags.StringVarP(&opts.controllersPath, "controllers", "p", opts.controllersPath, "controllers directory")
	flags.StringVarP(&opts.defaultController, "default", "d", opts.defaultController, "default controller")
	flags.IntVarP(&opts.maxDepth, "max-depth", "m", opts.maxDepth, "maximum shortcut chain length")

	rootCmd.AddCommand(
		checkCmd(opts),
		resolveCmd(opts),
		urlCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

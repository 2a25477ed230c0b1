// The glenumgen command generates the gl and egl enum packages from the
// text tables under tables/.
//
//	go run ./cmd/glenumgen --config glenumgen.yaml --api gl
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/james4k/go-glenum/internal/config"
	"github.com/james4k/go-glenum/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts  options
		debug bool
	)
	cmd := &cobra.Command{
		Use:          "glenumgen",
		Short:        "glenumgen generates Go enum packages from GL/EGL enum tables",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.Setup(logger.Config{Debug: debug, Output: cmd.ErrOrStderr()})
			return run(cmd.Context(), log, opts)
		},
	}
	cmd.Flags().StringVar(&opts.config, "config", config.DefaultFile, "path to the generator configuration")
	cmd.Flags().StringSliceVar(&opts.apis, "api", nil, "only generate the named APIs (default all)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "validate the tables and render without writing files")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}

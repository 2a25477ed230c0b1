// The glenum command looks up GL and EGL enums by value or name.
//
//	glenum lookup 0x0DE1 3553
//	glenum lookup --bitfield 0x4100
//	glenum name GL_TEXTURE_2D
//	glenum range gl ShaderType
package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/james4k/go-glenum/egl"
	_ "github.com/james4k/go-glenum/gl"
	"github.com/james4k/go-glenum/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	cmd := &cobra.Command{
		Use:          "glenum",
		Short:        "glenum looks up GL and EGL enums by value or name",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger.Setup(logger.Config{Debug: debug, Output: cmd.ErrOrStderr()})
			return checkTables()
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.AddCommand(
		newLookupCmd(),
		newNameCmd(),
		newTypesCmd(),
		newRangeCmd(),
	)
	return cmd
}

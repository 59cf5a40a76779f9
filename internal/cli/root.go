// Package cli builds the measurefs command tree.
package cli

import (
	"fmt"

	"github.com/arthur-debert/measurefs/internal/version"
	"github.com/arthur-debert/measurefs/pkg/config"
	"github.com/arthur-debert/measurefs/pkg/filesystem"
	"github.com/arthur-debert/measurefs/pkg/logging"
	"github.com/arthur-debert/measurefs/pkg/types"
	"github.com/arthur-debert/measurefs/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	verbosity  int
	output     string
	configPath string
	fsys       types.FS
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	g := &globals{fsys: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "measurefs",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			if _, err := ui.ParseFormat(g.output); err != nil {
				return fmt.Errorf(MsgErrOutputFormat, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&g.output, "output", "o", "auto", MsgFlagOutput)
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(g))
	rootCmd.AddCommand(newCopyCmd(g))
	rootCmd.AddCommand(newValidateCmd(g))
	rootCmd.AddCommand(newStageCmd(g))
	rootCmd.AddCommand(newInfoCmd(g))
	rootCmd.AddCommand(newVerifyCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadConfig reads the layered configuration, with bundleDir as the
// directory searched for a bundle-local file.
func (g *globals) loadConfig(bundleDir string, overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.Load(config.Options{
		UserConfig: g.configPath,
		BundleDir:  bundleDir,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// renderer writes to the command's output in the selected format.
func (g *globals) renderer(cmd *cobra.Command) *ui.Renderer {
	format, _ := ui.ParseFormat(g.output)
	return ui.New(cmd.OutOrStdout(), format)
}

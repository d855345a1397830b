package cmd

import (
	"os"

	"leftpad/internal/buildinfo"
	"leftpad/internal/config"
	"leftpad/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfg *config.AppConfig
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "leftpad",
	Short: "Left-pad text to a minimum length.",
	Long: `Left-pad text to a minimum length.

Lengths are counted in bytes; every fill character counts as one repetition.

Provide a configuration file using one of the following methods:
1. Use the --config <path> or -c <path> flag.
2. Place a config.yaml file in the default user configuration directory (e.g., ~/.config/leftpad/).
3. Place a config.yaml file a folder inside your home directory (e.g., ~/.leftpad/).
4. Place a config.yaml file in the current directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.New(configPath, buildinfo.Version); err != nil {
			return err
		}

		log = logger.New(cfg.Config)
		log.Debug().Str("config", cfg.ConfigFileUsed()).Str("command", cmd.Name()).Msg("config loaded")

		return nil
	},
}

func init() {
	initRootFlags()
	initPadFlags()
	initRenderFlags()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(padCmd)
	rootCmd.AddCommand(renderCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

const defaultTimeout = 1 * time.Minute

var rootCmd = &cobra.Command{
	Use:              "beq [equations...]",
	Short:            "beq - canonicalize boolean equations",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'beq' is entered
			_ = cmd.Help()
			return
		}
		// Format: beq [eq1 eq2 ...] => behaves like the canon subcommand
		canonCmd.Run(canonCmd, args)
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the alias configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Timeout for batch processing")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(canonCmd)
	rootCmd.AddCommand(transformCmd)
}

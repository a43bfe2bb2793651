package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beqtools/beq"
)

// initCmd: beq init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new alias configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := beq.InitConfigurationFile(cfgFile)
		if err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

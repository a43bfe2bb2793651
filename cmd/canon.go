package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beqtools/beq"
	"github.com/beqtools/beq/formatter"
)

var (
	fromFiles       bool
	canonJsonOutput bool
	outPath         string
)

var canonCmd = &cobra.Command{
	Use:   "canon [equations...]",
	Short: "Canonicalize equations given as arguments or read from files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide equations or file paths")
			os.Exit(1)
		}

		engine, err := beq.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		var results []beq.Result
		if fromFiles {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			results, err = beq.ProcessFiles(ctx, logger, engine, args)
			if err != nil {
				fmt.Fprintln(os.Stderr, formatter.FormatError(err))
				os.Exit(1)
			}
		} else {
			for _, raw := range args {
				canonical, err := engine.Canonicalize(raw)
				if err != nil {
					fmt.Fprintln(os.Stderr, formatter.FormatError(err))
					os.Exit(1)
				}
				results = append(results, beq.Result{Input: raw, Canonical: canonical})
			}
		}

		printResults(results, canonJsonOutput, outPath)
	},
}

func init() {
	canonCmd.Flags().BoolVarP(&fromFiles, "file", "f", false, "Treat arguments as equation file paths")
	canonCmd.Flags().BoolVar(&canonJsonOutput, "json", false, "Output results in JSON format")
	canonCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func printResults(results []beq.Result, isJson bool, jsonOutput string) {
	if !isJson {
		fmt.Print(formatter.FormatResults(results))
		return
	}

	d, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		logger.Fatal("Failed to marshal results", zap.Error(err))
	}

	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}

	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		logger.Fatal("Failed to write output file", zap.String("path", jsonOutput), zap.Error(err))
	}
}

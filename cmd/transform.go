package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beqtools/beq"
	"github.com/beqtools/beq/formatter"
	"github.com/beqtools/beq/transform"
)

var (
	deMorgans   bool
	primitives  bool
	collapseNot bool
	cnf         bool
)

var transformCmd = &cobra.Command{
	Use:   "transform [equations...]",
	Short: "Apply tree rewrites to equations and print their canonical form",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide equations")
			os.Exit(1)
		}

		pipeline := buildPipeline()
		if pipeline == nil {
			fmt.Println("error: Please select at least one transformation")
			os.Exit(1)
		}

		engine, err := beq.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		var results []beq.Result
		for _, raw := range args {
			eq, err := engine.Parse(raw)
			if err != nil {
				fmt.Fprintln(os.Stderr, formatter.FormatError(err))
				os.Exit(1)
			}
			transformed := &beq.Equation{Name: eq.Name, Root: pipeline(eq.Root)}
			results = append(results, beq.Result{Input: raw, Canonical: transformed.Canonical()})
		}

		printResults(results, canonJsonOutput, outPath)
	},
}

func init() {
	transformCmd.Flags().BoolVar(&deMorgans, "de-morgans", false, "Apply De Morgan's laws to a fixpoint")
	transformCmd.Flags().BoolVar(&primitives, "primitives", false, "Rewrite XOR in terms of NOT, AND, OR")
	transformCmd.Flags().BoolVar(&collapseNot, "collapse-not", false, "Collapse double negations")
	transformCmd.Flags().BoolVar(&cnf, "cnf", false, "Convert to conjunctive normal form")
	transformCmd.Flags().BoolVar(&canonJsonOutput, "json", false, "Output results in JSON format")
	transformCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func buildPipeline() transform.Transformation {
	var steps []transform.Transformation
	if primitives {
		steps = append(steps, transform.ToPrimitives)
	}
	if deMorgans {
		steps = append(steps, transform.Repeat(transform.ApplyDeMorgans))
	}
	if collapseNot {
		steps = append(steps, transform.Repeat(transform.CollapseNegations))
	}
	if cnf {
		steps = append(steps, transform.ToCNF)
	}
	if len(steps) == 0 {
		return nil
	}
	return transform.Compose(steps...)
}

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	// Application core & domain
	"github.com/ZanzyTHEbar/gocas/internal/app"

	// Adapters
	"github.com/ZanzyTHEbar/gocas/internal/adapters/cli"
	"github.com/ZanzyTHEbar/gocas/internal/adapters/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/adapters/output"
)

var rootCmd = &cobra.Command{
	Use:   "gocas",
	Short: "gocas is a computer algebra system for LaTeX-flavored math expressions",
	Long: `gocas parses a LaTeX-flavored mathematical expression, optionally
simplifies, differentiates, integrates, solves, or factors it, and renders
the result back to TeX.`,
	Run: func(cmd *cobra.Command, args []string) {
		outputFilePath, _ := cmd.Flags().GetString("output")

		// --- Dependency Injection ---
		inputAdapter := cli.NewAdapter(cmd)
		outputAdapter := output.NewWriterAdapter(outputFilePath)
		integrator := numeric.NewSimpson()

		appService := app.NewApplicationService(inputAdapter, outputAdapter, integrator)

		if err := appService.Run(); err != nil {
			log.Fatalf("Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.Flags().StringP("expr", "e", "", "Expression string (required)")
	rootCmd.Flags().StringP("output", "o", "", "Output TeX file path (default: stdout)")
	rootCmd.Flags().Bool("simplify", true, "Simplify the parsed expression before rendering")
	rootCmd.Flags().Bool("eager-derivatives", true, "Evaluate derivatives eagerly instead of leaving them symbolic")
	rootCmd.Flags().Bool("eager-integrals", true, "Evaluate definite integrals eagerly via Simpson's rule")
	rootCmd.Flags().Int("subintervals", 1000, "Number of subintervals used by Simpson's rule")

	if err := rootCmd.MarkFlagRequired("expr"); err != nil {
		log.Fatalf("Error marking flag required: %v\n", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

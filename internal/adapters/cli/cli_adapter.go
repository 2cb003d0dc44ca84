package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/gocas/internal/app" // For app.Config and app.ExpressionSource
	"github.com/spf13/cobra"
)

// Adapter implements the app.ExpressionSource interface using Cobra flags.
type Adapter struct {
	cmd *cobra.Command
}

// NewAdapter creates a new CLI adapter instance.
func NewAdapter(cmd *cobra.Command) *Adapter {
	// Ensure the necessary flags are defined on the command passed in.
	// This relies on the main.go setup.
	required := []string{"expr", "output", "simplify", "eager-derivatives", "eager-integrals", "subintervals"}
	for _, name := range required {
		if cmd.Flag(name) == nil {
			panic("CLI Adapter requires command with 'expr', 'output', 'simplify', 'eager-derivatives', 'eager-integrals', and 'subintervals' flags defined")
		}
	}
	return &Adapter{cmd: cmd}
}

// GetExpression retrieves the expression string and configuration from
// Cobra flags (spec NEW-1.2).
func (a *Adapter) GetExpression() (expr string, config app.Config, err error) {
	expr, err = a.cmd.Flags().GetString("expr")
	if err != nil {
		return "", app.Config{}, fmt.Errorf("failed to get 'expr' flag: %w", err)
	}
	if expr == "" {
		return "", app.Config{}, fmt.Errorf("expression string cannot be empty")
	}

	outputFile, _ := a.cmd.Flags().GetString("output")
	simplify, _ := a.cmd.Flags().GetBool("simplify")
	eagerDerivatives, _ := a.cmd.Flags().GetBool("eager-derivatives")
	eagerIntegrals, _ := a.cmd.Flags().GetBool("eager-integrals")
	subintervals, _ := a.cmd.Flags().GetInt("subintervals")

	config = app.Config{
		OutputFile:       outputFile,
		Simplify:         simplify,
		EagerDerivatives: eagerDerivatives,
		EagerIntegrals:   eagerIntegrals,
		Subintervals:     subintervals,
	}

	return expr, config, nil
}

package cli_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/gocas/internal/adapters/cli"
)

func newFlaggedCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().StringP("expr", "e", "", "Expression string")
	cmd.Flags().StringP("output", "o", "", "Output TeX file path")
	cmd.Flags().Bool("simplify", true, "Simplify before rendering")
	cmd.Flags().Bool("eager-derivatives", true, "Evaluate derivatives eagerly")
	cmd.Flags().Bool("eager-integrals", true, "Evaluate integrals eagerly")
	cmd.Flags().Int("subintervals", 1000, "Simpson's-rule subintervals")
	return cmd
}

func TestCliAdapter_GetExpression_Success(t *testing.T) {
	cmd := newFlaggedCommand()

	expectedExpr := "x^2 + y^2"
	expectedOutput := "calc.tex"

	require.NoError(t, cmd.Flags().Set("expr", expectedExpr))
	require.NoError(t, cmd.Flags().Set("output", expectedOutput))
	require.NoError(t, cmd.Flags().Set("simplify", "false"))
	require.NoError(t, cmd.Flags().Set("eager-derivatives", "false"))
	require.NoError(t, cmd.Flags().Set("eager-integrals", "false"))
	require.NoError(t, cmd.Flags().Set("subintervals", "200"))

	adapter := cli.NewAdapter(cmd)

	expr, config, err := adapter.GetExpression()

	require.NoError(t, err)
	assert.Equal(t, expectedExpr, expr)
	assert.Equal(t, expectedOutput, config.OutputFile)
	assert.False(t, config.Simplify)
	assert.False(t, config.EagerDerivatives)
	assert.False(t, config.EagerIntegrals)
	assert.Equal(t, 200, config.Subintervals)
}

func TestCliAdapter_GetExpression_MissingExpr(t *testing.T) {
	cmd := newFlaggedCommand()
	// expr flag is deliberately not set

	adapter := cli.NewAdapter(cmd)

	_, _, err := adapter.GetExpression()

	require.Error(t, err)
	assert.ErrorContains(t, err, "expression string cannot be empty")
}

func TestCliAdapter_NewAdapter_PanicMissingFlags(t *testing.T) {
	cmd := &cobra.Command{}
	// Deliberately omit defining flags

	assert.Panics(t, func() { cli.NewAdapter(cmd) }, "Should panic if flags are missing")
}

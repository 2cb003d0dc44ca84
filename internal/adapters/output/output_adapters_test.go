package output_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/gocas/internal/adapters/output"
)

// Helper function to capture stdout
func captureStdout(f func() error) (string, error) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := f()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), err
}

func TestStdoutAdapter_WriteResult(t *testing.T) {
	adapter := output.NewStdoutAdapter()
	expectedTeX := "\\frac{1}{2}"

	outputStr, err := captureStdout(func() error {
		return adapter.WriteResult(expectedTeX)
	})

	require.NoError(t, err)
	// fmt.Println adds a newline, so we expect the TeX + newline
	assert.Equal(t, expectedTeX+"\n", outputStr)
}

func TestFileAdapter_WriteResult_NewFile(t *testing.T) {
	tempDir := t.TempDir() // Creates a temporary directory cleaned up automatically
	testFilePath := filepath.Join(tempDir, "test_output.tex")
	expectedTeX := "x^{2} + 2 \\cdot x"

	adapter := output.NewFileAdapter(testFilePath)

	err := adapter.WriteResult(expectedTeX)

	require.NoError(t, err)

	contentBytes, readErr := os.ReadFile(testFilePath)
	require.NoError(t, readErr)
	assert.Equal(t, expectedTeX, string(contentBytes))
}

func TestFileAdapter_WriteResult_OverwriteFile(t *testing.T) {
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "test_output_overwrite.tex")
	initialContent := "initial content"
	expectedTeX := "\\sqrt{2}"

	require.NoError(t, os.WriteFile(testFilePath, []byte(initialContent), 0644))

	adapter := output.NewFileAdapter(testFilePath)

	err := adapter.WriteResult(expectedTeX)

	require.NoError(t, err)

	contentBytes, readErr := os.ReadFile(testFilePath)
	require.NoError(t, readErr)
	assert.Equal(t, expectedTeX, string(contentBytes))
}

func TestFileAdapter_WriteResult_InvalidPath(t *testing.T) {
	// Writing to a path that is itself a directory should fail.
	tempDir := t.TempDir()
	adapter := output.NewFileAdapter(tempDir)
	expectedTeX := "x"

	err := adapter.WriteResult(expectedTeX)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to write result to file")
}

func TestNewFileAdapter_PanicEmptyPath(t *testing.T) {
	assert.PanicsWithValue(t,
		"FileAdapter requires a non-empty file path",
		func() { output.NewFileAdapter("") },
		"Should panic if file path is empty",
	)
}

func TestNewWriterAdapter_Factory(t *testing.T) {
	t.Run("Empty Path returns StdoutAdapter", func(t *testing.T) {
		adapter := output.NewWriterAdapter("")
		assert.IsType(t, &output.StdoutAdapter{}, adapter)
	})

	t.Run("Non-Empty Path returns FileAdapter", func(t *testing.T) {
		adapter := output.NewWriterAdapter("some/path.tex")
		assert.IsType(t, &output.FileAdapter{}, adapter)
	})
}

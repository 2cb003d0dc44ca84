package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/gocas/internal/app"
	app_mocks "github.com/ZanzyTHEbar/gocas/internal/app/mocks"
)

type fakeIntegrator struct{}

func (fakeIntegrator) Integrate(f func(x float64) float64, lo, hi float64, subintervals int) float64 {
	return 0
}

func TestApplicationService_Run_Success(t *testing.T) {
	mockSource := app_mocks.NewMockExpressionSource(t)
	mockSink := app_mocks.NewMockResultSink(t)

	inputExpr := "x^2 + 2x"
	inputConfig := app.Config{Simplify: true}

	mockSource.On("GetExpression").Return(inputExpr, inputConfig, nil).Once()
	mockSink.On("WriteResult", mock.Anything).Return(nil).Once()

	service := app.NewApplicationService(mockSource, mockSink, fakeIntegrator{})

	err := service.Run()

	require.NoError(t, err)
}

func TestApplicationService_Run_GetExpressionError(t *testing.T) {
	mockSource := app_mocks.NewMockExpressionSource(t)
	mockSink := app_mocks.NewMockResultSink(t)

	expectedError := errors.New("failed to get input")
	mockSource.On("GetExpression").Return("", app.Config{}, expectedError).Once()

	service := app.NewApplicationService(mockSource, mockSink, fakeIntegrator{})

	err := service.Run()

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to get expression")
	assert.ErrorIs(t, err, expectedError)
}

func TestApplicationService_Run_ParseError(t *testing.T) {
	mockSource := app_mocks.NewMockExpressionSource(t)
	mockSink := app_mocks.NewMockResultSink(t)

	mockSource.On("GetExpression").Return("2 +* 3", app.Config{}, nil).Once()

	service := app.NewApplicationService(mockSource, mockSink, fakeIntegrator{})

	err := service.Run()

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse expression")
}

func TestApplicationService_Run_WriteError(t *testing.T) {
	mockSource := app_mocks.NewMockExpressionSource(t)
	mockSink := app_mocks.NewMockResultSink(t)

	mockSource.On("GetExpression").Return("x", app.Config{}, nil).Once()
	expectedError := errors.New("write failed")
	mockSink.On("WriteResult", mock.Anything).Return(expectedError).Once()

	service := app.NewApplicationService(mockSource, mockSink, fakeIntegrator{})

	err := service.Run()

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to write result")
	assert.ErrorIs(t, err, expectedError)
}

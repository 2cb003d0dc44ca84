package mocks

import (
	"github.com/ZanzyTHEbar/gocas/internal/app"
	"github.com/stretchr/testify/mock"
)

// MockExpressionSource is a mock type for the ExpressionSource type
type MockExpressionSource struct {
	mock.Mock
}

// GetExpression provides a mock function with given fields:
func (_m *MockExpressionSource) GetExpression() (string, app.Config, error) {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 app.Config
	if rf, ok := ret.Get(1).(func() app.Config); ok {
		r1 = rf()
	} else {
		r1 = ret.Get(1).(app.Config)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func() error); ok {
		r2 = rf()
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewMockExpressionSource creates a new instance of MockExpressionSource. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockExpressionSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExpressionSource {
	mock := &MockExpressionSource{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockResultSink is a mock type for the ResultSink type
type MockResultSink struct {
	mock.Mock
}

// WriteResult provides a mock function with given fields: tex
func (_m *MockResultSink) WriteResult(tex string) error {
	ret := _m.Called(tex)

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(tex)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockResultSink creates a new instance of MockResultSink. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockResultSink(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResultSink {
	mock := &MockResultSink{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

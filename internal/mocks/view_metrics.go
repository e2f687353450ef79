package mocks

import (
	"github.com/stretchr/testify/mock"
)

// ViewMetrics is an autogenerated mock type for the ViewMetrics type
type ViewMetrics struct {
	mock.Mock
}

type ViewMetrics_Expecter struct {
	mock *mock.Mock
}

func (_m *ViewMetrics) EXPECT() *ViewMetrics_Expecter {
	return &ViewMetrics_Expecter{mock: &_m.Mock}
}

// RecordView provides a mock function with given fields: result
func (_m *ViewMetrics) RecordView(result string) {
	_m.Called(result)
}

// ViewMetrics_RecordView_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordView'
type ViewMetrics_RecordView_Call struct {
	*mock.Call
}

// RecordView is a helper method to define mock.On call
//   - result string
func (_e *ViewMetrics_Expecter) RecordView(result interface{}) *ViewMetrics_RecordView_Call {
	return &ViewMetrics_RecordView_Call{Call: _e.mock.On("RecordView", result)}
}

func (_c *ViewMetrics_RecordView_Call) Run(run func(result string)) *ViewMetrics_RecordView_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *ViewMetrics_RecordView_Call) Return() *ViewMetrics_RecordView_Call {
	_c.Call.Return()
	return _c
}

func (_c *ViewMetrics_RecordView_Call) RunAndReturn(run func(string)) *ViewMetrics_RecordView_Call {
	_c.Run(run)
	return _c
}

// NewViewMetrics creates a new instance of ViewMetrics. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewViewMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *ViewMetrics {
	mock := &ViewMetrics{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

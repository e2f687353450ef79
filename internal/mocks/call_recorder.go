package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// CallRecorder is an autogenerated mock type for the CallRecorder type
type CallRecorder struct {
	mock.Mock
}

type CallRecorder_Expecter struct {
	mock *mock.Mock
}

func (_m *CallRecorder) EXPECT() *CallRecorder_Expecter {
	return &CallRecorder_Expecter{mock: &_m.Mock}
}

// Record provides a mock function with given fields: method, path, status, latency
func (_m *CallRecorder) Record(method string, path string, status int, latency time.Duration) {
	_m.Called(method, path, status, latency)
}

// CallRecorder_Record_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Record'
type CallRecorder_Record_Call struct {
	*mock.Call
}

// Record is a helper method to define mock.On call
//   - method string
//   - path string
//   - status int
//   - latency time.Duration
func (_e *CallRecorder_Expecter) Record(method interface{}, path interface{}, status interface{}, latency interface{}) *CallRecorder_Record_Call {
	return &CallRecorder_Record_Call{Call: _e.mock.On("Record", method, path, status, latency)}
}

func (_c *CallRecorder_Record_Call) Run(run func(method string, path string, status int, latency time.Duration)) *CallRecorder_Record_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string), args[2].(int), args[3].(time.Duration))
	})
	return _c
}

func (_c *CallRecorder_Record_Call) Return() *CallRecorder_Record_Call {
	_c.Call.Return()
	return _c
}

func (_c *CallRecorder_Record_Call) RunAndReturn(run func(string, string, int, time.Duration)) *CallRecorder_Record_Call {
	_c.Run(run)
	return _c
}

// NewCallRecorder creates a new instance of CallRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewCallRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *CallRecorder {
	mock := &CallRecorder{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// UniqueEventLedger is an autogenerated mock type for the UniqueEventLedger type
type UniqueEventLedger struct {
	mock.Mock
}

type UniqueEventLedger_Expecter struct {
	mock *mock.Mock
}

func (_m *UniqueEventLedger) EXPECT() *UniqueEventLedger_Expecter {
	return &UniqueEventLedger_Expecter{mock: &_m.Mock}
}

// Load provides a mock function with given fields: ctx, limit
func (_m *UniqueEventLedger) Load(ctx context.Context, limit int) error {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int) error); ok {
		r0 = rf(ctx, limit)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UniqueEventLedger_Load_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Load'
type UniqueEventLedger_Load_Call struct {
	*mock.Call
}

// Load is a helper method to define mock.On call
//   - ctx context.Context
//   - limit int
func (_e *UniqueEventLedger_Expecter) Load(ctx interface{}, limit interface{}) *UniqueEventLedger_Load_Call {
	return &UniqueEventLedger_Load_Call{Call: _e.mock.On("Load", ctx, limit)}
}

func (_c *UniqueEventLedger_Load_Call) Run(run func(ctx context.Context, limit int)) *UniqueEventLedger_Load_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *UniqueEventLedger_Load_Call) Return(_a0 error) *UniqueEventLedger_Load_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *UniqueEventLedger_Load_Call) RunAndReturn(run func(context.Context, int) error) *UniqueEventLedger_Load_Call {
	_c.Call.Return(run)
	return _c
}

// TryMark provides a mock function with given fields: ctx, subjectID, actorID
func (_m *UniqueEventLedger) TryMark(ctx context.Context, subjectID string, actorID string) (bool, error) {
	ret := _m.Called(ctx, subjectID, actorID)

	if len(ret) == 0 {
		panic("no return value specified for TryMark")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (bool, error)); ok {
		return rf(ctx, subjectID, actorID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) bool); ok {
		r0 = rf(ctx, subjectID, actorID)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, subjectID, actorID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UniqueEventLedger_TryMark_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TryMark'
type UniqueEventLedger_TryMark_Call struct {
	*mock.Call
}

// TryMark is a helper method to define mock.On call
//   - ctx context.Context
//   - subjectID string
//   - actorID string
func (_e *UniqueEventLedger_Expecter) TryMark(ctx interface{}, subjectID interface{}, actorID interface{}) *UniqueEventLedger_TryMark_Call {
	return &UniqueEventLedger_TryMark_Call{Call: _e.mock.On("TryMark", ctx, subjectID, actorID)}
}

func (_c *UniqueEventLedger_TryMark_Call) Run(run func(ctx context.Context, subjectID string, actorID string)) *UniqueEventLedger_TryMark_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *UniqueEventLedger_TryMark_Call) Return(_a0 bool, _a1 error) *UniqueEventLedger_TryMark_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *UniqueEventLedger_TryMark_Call) RunAndReturn(run func(context.Context, string, string) (bool, error)) *UniqueEventLedger_TryMark_Call {
	_c.Call.Return(run)
	return _c
}

// NewUniqueEventLedger creates a new instance of UniqueEventLedger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUniqueEventLedger(t interface {
	mock.TestingT
	Cleanup(func())
}) *UniqueEventLedger {
	mock := &UniqueEventLedger{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

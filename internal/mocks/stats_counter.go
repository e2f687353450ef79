package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// StatsCounter is an autogenerated mock type for the StatsCounter type
type StatsCounter struct {
	mock.Mock
}

type StatsCounter_Expecter struct {
	mock *mock.Mock
}

func (_m *StatsCounter) EXPECT() *StatsCounter_Expecter {
	return &StatsCounter_Expecter{mock: &_m.Mock}
}

// IncrementViews provides a mock function with given fields: ctx, postID, by
func (_m *StatsCounter) IncrementViews(ctx context.Context, postID string, by int64) error {
	ret := _m.Called(ctx, postID, by)

	if len(ret) == 0 {
		panic("no return value specified for IncrementViews")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) error); ok {
		r0 = rf(ctx, postID, by)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// StatsCounter_IncrementViews_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IncrementViews'
type StatsCounter_IncrementViews_Call struct {
	*mock.Call
}

// IncrementViews is a helper method to define mock.On call
//   - ctx context.Context
//   - postID string
//   - by int64
func (_e *StatsCounter_Expecter) IncrementViews(ctx interface{}, postID interface{}, by interface{}) *StatsCounter_IncrementViews_Call {
	return &StatsCounter_IncrementViews_Call{Call: _e.mock.On("IncrementViews", ctx, postID, by)}
}

func (_c *StatsCounter_IncrementViews_Call) Run(run func(ctx context.Context, postID string, by int64)) *StatsCounter_IncrementViews_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})
	return _c
}

func (_c *StatsCounter_IncrementViews_Call) Return(_a0 error) *StatsCounter_IncrementViews_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *StatsCounter_IncrementViews_Call) RunAndReturn(run func(context.Context, string, int64) error) *StatsCounter_IncrementViews_Call {
	_c.Call.Return(run)
	return _c
}

// SyncCommentsTotal provides a mock function with given fields: ctx, postID
func (_m *StatsCounter) SyncCommentsTotal(ctx context.Context, postID string) error {
	ret := _m.Called(ctx, postID)

	if len(ret) == 0 {
		panic("no return value specified for SyncCommentsTotal")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, postID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// StatsCounter_SyncCommentsTotal_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SyncCommentsTotal'
type StatsCounter_SyncCommentsTotal_Call struct {
	*mock.Call
}

// SyncCommentsTotal is a helper method to define mock.On call
//   - ctx context.Context
//   - postID string
func (_e *StatsCounter_Expecter) SyncCommentsTotal(ctx interface{}, postID interface{}) *StatsCounter_SyncCommentsTotal_Call {
	return &StatsCounter_SyncCommentsTotal_Call{Call: _e.mock.On("SyncCommentsTotal", ctx, postID)}
}

func (_c *StatsCounter_SyncCommentsTotal_Call) Run(run func(ctx context.Context, postID string)) *StatsCounter_SyncCommentsTotal_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *StatsCounter_SyncCommentsTotal_Call) Return(_a0 error) *StatsCounter_SyncCommentsTotal_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *StatsCounter_SyncCommentsTotal_Call) RunAndReturn(run func(context.Context, string) error) *StatsCounter_SyncCommentsTotal_Call {
	_c.Call.Return(run)
	return _c
}

// NewStatsCounter creates a new instance of StatsCounter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewStatsCounter(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsCounter {
	mock := &StatsCounter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

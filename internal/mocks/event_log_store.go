package mocks

import (
	"context"

	ports "blogapi.app/internal/ports"
	"github.com/stretchr/testify/mock"
)

// EventLogStore is an autogenerated mock type for the EventLogStore type
type EventLogStore struct {
	mock.Mock
}

type EventLogStore_Expecter struct {
	mock *mock.Mock
}

func (_m *EventLogStore) EXPECT() *EventLogStore_Expecter {
	return &EventLogStore_Expecter{mock: &_m.Mock}
}

// Append provides a mock function with given fields: ctx, rec
func (_m *EventLogStore) Append(ctx context.Context, rec ports.UniqueEventRecord) error {
	ret := _m.Called(ctx, rec)

	if len(ret) == 0 {
		panic("no return value specified for Append")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, ports.UniqueEventRecord) error); ok {
		r0 = rf(ctx, rec)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// EventLogStore_Append_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Append'
type EventLogStore_Append_Call struct {
	*mock.Call
}

// Append is a helper method to define mock.On call
//   - ctx context.Context
//   - rec ports.UniqueEventRecord
func (_e *EventLogStore_Expecter) Append(ctx interface{}, rec interface{}) *EventLogStore_Append_Call {
	return &EventLogStore_Append_Call{Call: _e.mock.On("Append", ctx, rec)}
}

func (_c *EventLogStore_Append_Call) Run(run func(ctx context.Context, rec ports.UniqueEventRecord)) *EventLogStore_Append_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(ports.UniqueEventRecord))
	})
	return _c
}

func (_c *EventLogStore_Append_Call) Return(_a0 error) *EventLogStore_Append_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *EventLogStore_Append_Call) RunAndReturn(run func(context.Context, ports.UniqueEventRecord) error) *EventLogStore_Append_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function with given fields:
func (_m *EventLogStore) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// EventLogStore_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type EventLogStore_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *EventLogStore_Expecter) Close() *EventLogStore_Close_Call {
	return &EventLogStore_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *EventLogStore_Close_Call) Run(run func()) *EventLogStore_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *EventLogStore_Close_Call) Return(_a0 error) *EventLogStore_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *EventLogStore_Close_Call) RunAndReturn(run func() error) *EventLogStore_Close_Call {
	_c.Call.Return(run)
	return _c
}

// Replay provides a mock function with given fields: ctx, limit, fn
func (_m *EventLogStore) Replay(ctx context.Context, limit int, fn func(ports.UniqueEventRecord)) error {
	ret := _m.Called(ctx, limit, fn)

	if len(ret) == 0 {
		panic("no return value specified for Replay")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, func(ports.UniqueEventRecord)) error); ok {
		r0 = rf(ctx, limit, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// EventLogStore_Replay_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Replay'
type EventLogStore_Replay_Call struct {
	*mock.Call
}

// Replay is a helper method to define mock.On call
//   - ctx context.Context
//   - limit int
//   - fn func(ports.UniqueEventRecord)
func (_e *EventLogStore_Expecter) Replay(ctx interface{}, limit interface{}, fn interface{}) *EventLogStore_Replay_Call {
	return &EventLogStore_Replay_Call{Call: _e.mock.On("Replay", ctx, limit, fn)}
}

func (_c *EventLogStore_Replay_Call) Run(run func(ctx context.Context, limit int, fn func(ports.UniqueEventRecord))) *EventLogStore_Replay_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int), args[2].(func(ports.UniqueEventRecord)))
	})
	return _c
}

func (_c *EventLogStore_Replay_Call) Return(_a0 error) *EventLogStore_Replay_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *EventLogStore_Replay_Call) RunAndReturn(run func(context.Context, int, func(ports.UniqueEventRecord)) error) *EventLogStore_Replay_Call {
	_c.Call.Return(run)
	return _c
}

// NewEventLogStore creates a new instance of EventLogStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewEventLogStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventLogStore {
	mock := &EventLogStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

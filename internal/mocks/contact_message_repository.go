package mocks

import (
	"context"
	"time"

	ports "blogapi.app/internal/ports"
	"github.com/stretchr/testify/mock"
)

// ContactMessageRepository is an autogenerated mock type for the ContactMessageRepository type
type ContactMessageRepository struct {
	mock.Mock
}

type ContactMessageRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *ContactMessageRepository) EXPECT() *ContactMessageRepository_Expecter {
	return &ContactMessageRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, msg
func (_m *ContactMessageRepository) Create(ctx context.Context, msg ports.ContactMessageData) error {
	ret := _m.Called(ctx, msg)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, ports.ContactMessageData) error); ok {
		r0 = rf(ctx, msg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ContactMessageRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type ContactMessageRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - msg ports.ContactMessageData
func (_e *ContactMessageRepository_Expecter) Create(ctx interface{}, msg interface{}) *ContactMessageRepository_Create_Call {
	return &ContactMessageRepository_Create_Call{Call: _e.mock.On("Create", ctx, msg)}
}

func (_c *ContactMessageRepository_Create_Call) Run(run func(ctx context.Context, msg ports.ContactMessageData)) *ContactMessageRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(ports.ContactMessageData))
	})
	return _c
}

func (_c *ContactMessageRepository_Create_Call) Return(_a0 error) *ContactMessageRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *ContactMessageRepository_Create_Call) RunAndReturn(run func(context.Context, ports.ContactMessageData) error) *ContactMessageRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// LastCreatedBy provides a mock function with given fields: ctx, visitorID
func (_m *ContactMessageRepository) LastCreatedBy(ctx context.Context, visitorID string) (time.Time, bool, error) {
	ret := _m.Called(ctx, visitorID)

	if len(ret) == 0 {
		panic("no return value specified for LastCreatedBy")
	}

	var r0 time.Time
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (time.Time, bool, error)); ok {
		return rf(ctx, visitorID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) time.Time); ok {
		r0 = rf(ctx, visitorID)
	} else {
		r0 = ret.Get(0).(time.Time)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) bool); ok {
		r1 = rf(ctx, visitorID)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string) error); ok {
		r2 = rf(ctx, visitorID)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// ContactMessageRepository_LastCreatedBy_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LastCreatedBy'
type ContactMessageRepository_LastCreatedBy_Call struct {
	*mock.Call
}

// LastCreatedBy is a helper method to define mock.On call
//   - ctx context.Context
//   - visitorID string
func (_e *ContactMessageRepository_Expecter) LastCreatedBy(ctx interface{}, visitorID interface{}) *ContactMessageRepository_LastCreatedBy_Call {
	return &ContactMessageRepository_LastCreatedBy_Call{Call: _e.mock.On("LastCreatedBy", ctx, visitorID)}
}

func (_c *ContactMessageRepository_LastCreatedBy_Call) Run(run func(ctx context.Context, visitorID string)) *ContactMessageRepository_LastCreatedBy_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *ContactMessageRepository_LastCreatedBy_Call) Return(_a0 time.Time, _a1 bool, _a2 error) *ContactMessageRepository_LastCreatedBy_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *ContactMessageRepository_LastCreatedBy_Call) RunAndReturn(run func(context.Context, string) (time.Time, bool, error)) *ContactMessageRepository_LastCreatedBy_Call {
	_c.Call.Return(run)
	return _c
}

// NewContactMessageRepository creates a new instance of ContactMessageRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewContactMessageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContactMessageRepository {
	mock := &ContactMessageRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import (
	"context"

	ports "blogapi.app/internal/ports"
	"github.com/stretchr/testify/mock"
)

// CooldownGate is an autogenerated mock type for the CooldownGate type
type CooldownGate struct {
	mock.Mock
}

type CooldownGate_Expecter struct {
	mock *mock.Mock
}

func (_m *CooldownGate) EXPECT() *CooldownGate_Expecter {
	return &CooldownGate_Expecter{mock: &_m.Mock}
}

// CheckComment provides a mock function with given fields: ctx, visitorID, postID
func (_m *CooldownGate) CheckComment(ctx context.Context, visitorID string, postID string) ports.CooldownDecision {
	ret := _m.Called(ctx, visitorID, postID)

	if len(ret) == 0 {
		panic("no return value specified for CheckComment")
	}

	var r0 ports.CooldownDecision
	if rf, ok := ret.Get(0).(func(context.Context, string, string) ports.CooldownDecision); ok {
		r0 = rf(ctx, visitorID, postID)
	} else {
		r0 = ret.Get(0).(ports.CooldownDecision)
	}

	return r0
}

// CooldownGate_CheckComment_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CheckComment'
type CooldownGate_CheckComment_Call struct {
	*mock.Call
}

// CheckComment is a helper method to define mock.On call
//   - ctx context.Context
//   - visitorID string
//   - postID string
func (_e *CooldownGate_Expecter) CheckComment(ctx interface{}, visitorID interface{}, postID interface{}) *CooldownGate_CheckComment_Call {
	return &CooldownGate_CheckComment_Call{Call: _e.mock.On("CheckComment", ctx, visitorID, postID)}
}

func (_c *CooldownGate_CheckComment_Call) Run(run func(ctx context.Context, visitorID string, postID string)) *CooldownGate_CheckComment_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *CooldownGate_CheckComment_Call) Return(_a0 ports.CooldownDecision) *CooldownGate_CheckComment_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *CooldownGate_CheckComment_Call) RunAndReturn(run func(context.Context, string, string) ports.CooldownDecision) *CooldownGate_CheckComment_Call {
	_c.Call.Return(run)
	return _c
}

// CheckContact provides a mock function with given fields: ctx, visitorID
func (_m *CooldownGate) CheckContact(ctx context.Context, visitorID string) ports.CooldownDecision {
	ret := _m.Called(ctx, visitorID)

	if len(ret) == 0 {
		panic("no return value specified for CheckContact")
	}

	var r0 ports.CooldownDecision
	if rf, ok := ret.Get(0).(func(context.Context, string) ports.CooldownDecision); ok {
		r0 = rf(ctx, visitorID)
	} else {
		r0 = ret.Get(0).(ports.CooldownDecision)
	}

	return r0
}

// CooldownGate_CheckContact_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CheckContact'
type CooldownGate_CheckContact_Call struct {
	*mock.Call
}

// CheckContact is a helper method to define mock.On call
//   - ctx context.Context
//   - visitorID string
func (_e *CooldownGate_Expecter) CheckContact(ctx interface{}, visitorID interface{}) *CooldownGate_CheckContact_Call {
	return &CooldownGate_CheckContact_Call{Call: _e.mock.On("CheckContact", ctx, visitorID)}
}

func (_c *CooldownGate_CheckContact_Call) Run(run func(ctx context.Context, visitorID string)) *CooldownGate_CheckContact_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *CooldownGate_CheckContact_Call) Return(_a0 ports.CooldownDecision) *CooldownGate_CheckContact_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *CooldownGate_CheckContact_Call) RunAndReturn(run func(context.Context, string) ports.CooldownDecision) *CooldownGate_CheckContact_Call {
	_c.Call.Return(run)
	return _c
}

// NewCooldownGate creates a new instance of CooldownGate. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewCooldownGate(t interface {
	mock.TestingT
	Cleanup(func())
}) *CooldownGate {
	mock := &CooldownGate{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import (
	"context"

	ports "blogapi.app/internal/ports"
	"github.com/stretchr/testify/mock"
)

// EmailProvider is an autogenerated mock type for the EmailProvider type
type EmailProvider struct {
	mock.Mock
}

type EmailProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *EmailProvider) EXPECT() *EmailProvider_Expecter {
	return &EmailProvider_Expecter{mock: &_m.Mock}
}

// SendEmail provides a mock function with given fields: ctx, params
func (_m *EmailProvider) SendEmail(ctx context.Context, params ports.EmailParams) error {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for SendEmail")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, ports.EmailParams) error); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// EmailProvider_SendEmail_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SendEmail'
type EmailProvider_SendEmail_Call struct {
	*mock.Call
}

// SendEmail is a helper method to define mock.On call
//   - ctx context.Context
//   - params ports.EmailParams
func (_e *EmailProvider_Expecter) SendEmail(ctx interface{}, params interface{}) *EmailProvider_SendEmail_Call {
	return &EmailProvider_SendEmail_Call{Call: _e.mock.On("SendEmail", ctx, params)}
}

func (_c *EmailProvider_SendEmail_Call) Run(run func(ctx context.Context, params ports.EmailParams)) *EmailProvider_SendEmail_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(ports.EmailParams))
	})
	return _c
}

func (_c *EmailProvider_SendEmail_Call) Return(_a0 error) *EmailProvider_SendEmail_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *EmailProvider_SendEmail_Call) RunAndReturn(run func(context.Context, ports.EmailParams) error) *EmailProvider_SendEmail_Call {
	_c.Call.Return(run)
	return _c
}

// NewEmailProvider creates a new instance of EmailProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewEmailProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmailProvider {
	mock := &EmailProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import (
	"context"
	"time"

	ports "blogapi.app/internal/ports"
	"github.com/stretchr/testify/mock"
)

// CommentRepository is an autogenerated mock type for the CommentRepository type
type CommentRepository struct {
	mock.Mock
}

type CommentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *CommentRepository) EXPECT() *CommentRepository_Expecter {
	return &CommentRepository_Expecter{mock: &_m.Mock}
}

// CountApproved provides a mock function with given fields: ctx, postID
func (_m *CommentRepository) CountApproved(ctx context.Context, postID string) (int64, error) {
	ret := _m.Called(ctx, postID)

	if len(ret) == 0 {
		panic("no return value specified for CountApproved")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return rf(ctx, postID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, postID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, postID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CommentRepository_CountApproved_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountApproved'
type CommentRepository_CountApproved_Call struct {
	*mock.Call
}

// CountApproved is a helper method to define mock.On call
//   - ctx context.Context
//   - postID string
func (_e *CommentRepository_Expecter) CountApproved(ctx interface{}, postID interface{}) *CommentRepository_CountApproved_Call {
	return &CommentRepository_CountApproved_Call{Call: _e.mock.On("CountApproved", ctx, postID)}
}

func (_c *CommentRepository_CountApproved_Call) Run(run func(ctx context.Context, postID string)) *CommentRepository_CountApproved_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *CommentRepository_CountApproved_Call) Return(_a0 int64, _a1 error) *CommentRepository_CountApproved_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *CommentRepository_CountApproved_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *CommentRepository_CountApproved_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function with given fields: ctx, comment
func (_m *CommentRepository) Create(ctx context.Context, comment ports.CommentData) error {
	ret := _m.Called(ctx, comment)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, ports.CommentData) error); ok {
		r0 = rf(ctx, comment)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// CommentRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type CommentRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - comment ports.CommentData
func (_e *CommentRepository_Expecter) Create(ctx interface{}, comment interface{}) *CommentRepository_Create_Call {
	return &CommentRepository_Create_Call{Call: _e.mock.On("Create", ctx, comment)}
}

func (_c *CommentRepository_Create_Call) Run(run func(ctx context.Context, comment ports.CommentData)) *CommentRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(ports.CommentData))
	})
	return _c
}

func (_c *CommentRepository_Create_Call) Return(_a0 error) *CommentRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *CommentRepository_Create_Call) RunAndReturn(run func(context.Context, ports.CommentData) error) *CommentRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// LastCreatedBy provides a mock function with given fields: ctx, visitorID, postID
func (_m *CommentRepository) LastCreatedBy(ctx context.Context, visitorID string, postID string) (time.Time, bool, error) {
	ret := _m.Called(ctx, visitorID, postID)

	if len(ret) == 0 {
		panic("no return value specified for LastCreatedBy")
	}

	var r0 time.Time
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (time.Time, bool, error)); ok {
		return rf(ctx, visitorID, postID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) time.Time); ok {
		r0 = rf(ctx, visitorID, postID)
	} else {
		r0 = ret.Get(0).(time.Time)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) bool); ok {
		r1 = rf(ctx, visitorID, postID)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, string) error); ok {
		r2 = rf(ctx, visitorID, postID)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// CommentRepository_LastCreatedBy_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LastCreatedBy'
type CommentRepository_LastCreatedBy_Call struct {
	*mock.Call
}

// LastCreatedBy is a helper method to define mock.On call
//   - ctx context.Context
//   - visitorID string
//   - postID string
func (_e *CommentRepository_Expecter) LastCreatedBy(ctx interface{}, visitorID interface{}, postID interface{}) *CommentRepository_LastCreatedBy_Call {
	return &CommentRepository_LastCreatedBy_Call{Call: _e.mock.On("LastCreatedBy", ctx, visitorID, postID)}
}

func (_c *CommentRepository_LastCreatedBy_Call) Run(run func(ctx context.Context, visitorID string, postID string)) *CommentRepository_LastCreatedBy_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *CommentRepository_LastCreatedBy_Call) Return(_a0 time.Time, _a1 bool, _a2 error) *CommentRepository_LastCreatedBy_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *CommentRepository_LastCreatedBy_Call) RunAndReturn(run func(context.Context, string, string) (time.Time, bool, error)) *CommentRepository_LastCreatedBy_Call {
	_c.Call.Return(run)
	return _c
}

// NewCommentRepository creates a new instance of CommentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CommentRepository {
	mock := &CommentRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import (
	"context"

	ports "blogapi.app/internal/ports"
	"github.com/stretchr/testify/mock"
)

// RecordStore is an autogenerated mock type for the RecordStore type
type RecordStore struct {
	mock.Mock
}

type RecordStore_Expecter struct {
	mock *mock.Mock
}

func (_m *RecordStore) EXPECT() *RecordStore_Expecter {
	return &RecordStore_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, collection, payload
func (_m *RecordStore) Create(ctx context.Context, collection string, payload map[string]interface{}) (ports.Record, error) {
	ret := _m.Called(ctx, collection, payload)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 ports.Record
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, map[string]interface{}) (ports.Record, error)); ok {
		return rf(ctx, collection, payload)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, map[string]interface{}) ports.Record); ok {
		r0 = rf(ctx, collection, payload)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(ports.Record)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, map[string]interface{}) error); ok {
		r1 = rf(ctx, collection, payload)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RecordStore_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type RecordStore_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - collection string
//   - payload map[string]interface{}
func (_e *RecordStore_Expecter) Create(ctx interface{}, collection interface{}, payload interface{}) *RecordStore_Create_Call {
	return &RecordStore_Create_Call{Call: _e.mock.On("Create", ctx, collection, payload)}
}

func (_c *RecordStore_Create_Call) Run(run func(ctx context.Context, collection string, payload map[string]interface{})) *RecordStore_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(map[string]interface{}))
	})
	return _c
}

func (_c *RecordStore_Create_Call) Return(_a0 ports.Record, _a1 error) *RecordStore_Create_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *RecordStore_Create_Call) RunAndReturn(run func(context.Context, string, map[string]interface{}) (ports.Record, error)) *RecordStore_Create_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, collection, query
func (_m *RecordStore) List(ctx context.Context, collection string, query ports.ListQuery) (*ports.ListResult, error) {
	ret := _m.Called(ctx, collection, query)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 *ports.ListResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, ports.ListQuery) (*ports.ListResult, error)); ok {
		return rf(ctx, collection, query)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, ports.ListQuery) *ports.ListResult); ok {
		r0 = rf(ctx, collection, query)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ports.ListResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, ports.ListQuery) error); ok {
		r1 = rf(ctx, collection, query)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RecordStore_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type RecordStore_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - collection string
//   - query ports.ListQuery
func (_e *RecordStore_Expecter) List(ctx interface{}, collection interface{}, query interface{}) *RecordStore_List_Call {
	return &RecordStore_List_Call{Call: _e.mock.On("List", ctx, collection, query)}
}

func (_c *RecordStore_List_Call) Run(run func(ctx context.Context, collection string, query ports.ListQuery)) *RecordStore_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(ports.ListQuery))
	})
	return _c
}

func (_c *RecordStore_List_Call) Return(_a0 *ports.ListResult, _a1 error) *RecordStore_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *RecordStore_List_Call) RunAndReturn(run func(context.Context, string, ports.ListQuery) (*ports.ListResult, error)) *RecordStore_List_Call {
	_c.Call.Return(run)
	return _c
}

// Patch provides a mock function with given fields: ctx, collection, id, payload
func (_m *RecordStore) Patch(ctx context.Context, collection string, id string, payload map[string]interface{}) (ports.Record, error) {
	ret := _m.Called(ctx, collection, id, payload)

	if len(ret) == 0 {
		panic("no return value specified for Patch")
	}

	var r0 ports.Record
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, map[string]interface{}) (ports.Record, error)); ok {
		return rf(ctx, collection, id, payload)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, map[string]interface{}) ports.Record); ok {
		r0 = rf(ctx, collection, id, payload)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(ports.Record)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, map[string]interface{}) error); ok {
		r1 = rf(ctx, collection, id, payload)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RecordStore_Patch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Patch'
type RecordStore_Patch_Call struct {
	*mock.Call
}

// Patch is a helper method to define mock.On call
//   - ctx context.Context
//   - collection string
//   - id string
//   - payload map[string]interface{}
func (_e *RecordStore_Expecter) Patch(ctx interface{}, collection interface{}, id interface{}, payload interface{}) *RecordStore_Patch_Call {
	return &RecordStore_Patch_Call{Call: _e.mock.On("Patch", ctx, collection, id, payload)}
}

func (_c *RecordStore_Patch_Call) Run(run func(ctx context.Context, collection string, id string, payload map[string]interface{})) *RecordStore_Patch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(map[string]interface{}))
	})
	return _c
}

func (_c *RecordStore_Patch_Call) Return(_a0 ports.Record, _a1 error) *RecordStore_Patch_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *RecordStore_Patch_Call) RunAndReturn(run func(context.Context, string, string, map[string]interface{}) (ports.Record, error)) *RecordStore_Patch_Call {
	_c.Call.Return(run)
	return _c
}

// NewRecordStore creates a new instance of RecordStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRecordStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *RecordStore {
	mock := &RecordStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

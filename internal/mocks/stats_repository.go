package mocks

import (
	"context"

	ports "blogapi.app/internal/ports"
	"github.com/stretchr/testify/mock"
)

// StatsRepository is an autogenerated mock type for the StatsRepository type
type StatsRepository struct {
	mock.Mock
}

type StatsRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *StatsRepository) EXPECT() *StatsRepository_Expecter {
	return &StatsRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, postID
func (_m *StatsRepository) Create(ctx context.Context, postID string) (*ports.PostStatsData, error) {
	ret := _m.Called(ctx, postID)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *ports.PostStatsData
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*ports.PostStatsData, error)); ok {
		return rf(ctx, postID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *ports.PostStatsData); ok {
		r0 = rf(ctx, postID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ports.PostStatsData)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, postID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// StatsRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type StatsRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - postID string
func (_e *StatsRepository_Expecter) Create(ctx interface{}, postID interface{}) *StatsRepository_Create_Call {
	return &StatsRepository_Create_Call{Call: _e.mock.On("Create", ctx, postID)}
}

func (_c *StatsRepository_Create_Call) Run(run func(ctx context.Context, postID string)) *StatsRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *StatsRepository_Create_Call) Return(_a0 *ports.PostStatsData, _a1 error) *StatsRepository_Create_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *StatsRepository_Create_Call) RunAndReturn(run func(context.Context, string) (*ports.PostStatsData, error)) *StatsRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindByPosts provides a mock function with given fields: ctx, postIDs
func (_m *StatsRepository) FindByPosts(ctx context.Context, postIDs []string) (map[string]*ports.PostStatsData, error) {
	ret := _m.Called(ctx, postIDs)

	if len(ret) == 0 {
		panic("no return value specified for FindByPosts")
	}

	var r0 map[string]*ports.PostStatsData
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []string) (map[string]*ports.PostStatsData, error)); ok {
		return rf(ctx, postIDs)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []string) map[string]*ports.PostStatsData); ok {
		r0 = rf(ctx, postIDs)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]*ports.PostStatsData)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []string) error); ok {
		r1 = rf(ctx, postIDs)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// StatsRepository_FindByPosts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByPosts'
type StatsRepository_FindByPosts_Call struct {
	*mock.Call
}

// FindByPosts is a helper method to define mock.On call
//   - ctx context.Context
//   - postIDs []string
func (_e *StatsRepository_Expecter) FindByPosts(ctx interface{}, postIDs interface{}) *StatsRepository_FindByPosts_Call {
	return &StatsRepository_FindByPosts_Call{Call: _e.mock.On("FindByPosts", ctx, postIDs)}
}

func (_c *StatsRepository_FindByPosts_Call) Run(run func(ctx context.Context, postIDs []string)) *StatsRepository_FindByPosts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]string))
	})
	return _c
}

func (_c *StatsRepository_FindByPosts_Call) Return(_a0 map[string]*ports.PostStatsData, _a1 error) *StatsRepository_FindByPosts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *StatsRepository_FindByPosts_Call) RunAndReturn(run func(context.Context, []string) (map[string]*ports.PostStatsData, error)) *StatsRepository_FindByPosts_Call {
	_c.Call.Return(run)
	return _c
}

// ListSorted provides a mock function with given fields: ctx, field, limit
func (_m *StatsRepository) ListSorted(ctx context.Context, field string, limit int) ([]*ports.PostStatsData, error) {
	ret := _m.Called(ctx, field, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListSorted")
	}

	var r0 []*ports.PostStatsData
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]*ports.PostStatsData, error)); ok {
		return rf(ctx, field, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int) []*ports.PostStatsData); ok {
		r0 = rf(ctx, field, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*ports.PostStatsData)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, field, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// StatsRepository_ListSorted_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListSorted'
type StatsRepository_ListSorted_Call struct {
	*mock.Call
}

// ListSorted is a helper method to define mock.On call
//   - ctx context.Context
//   - field string
//   - limit int
func (_e *StatsRepository_Expecter) ListSorted(ctx interface{}, field interface{}, limit interface{}) *StatsRepository_ListSorted_Call {
	return &StatsRepository_ListSorted_Call{Call: _e.mock.On("ListSorted", ctx, field, limit)}
}

func (_c *StatsRepository_ListSorted_Call) Run(run func(ctx context.Context, field string, limit int)) *StatsRepository_ListSorted_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *StatsRepository_ListSorted_Call) Return(_a0 []*ports.PostStatsData, _a1 error) *StatsRepository_ListSorted_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *StatsRepository_ListSorted_Call) RunAndReturn(run func(context.Context, string, int) ([]*ports.PostStatsData, error)) *StatsRepository_ListSorted_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, statsID, fields
func (_m *StatsRepository) Update(ctx context.Context, statsID string, fields map[string]interface{}) error {
	ret := _m.Called(ctx, statsID, fields)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, map[string]interface{}) error); ok {
		r0 = rf(ctx, statsID, fields)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// StatsRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type StatsRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - statsID string
//   - fields map[string]interface{}
func (_e *StatsRepository_Expecter) Update(ctx interface{}, statsID interface{}, fields interface{}) *StatsRepository_Update_Call {
	return &StatsRepository_Update_Call{Call: _e.mock.On("Update", ctx, statsID, fields)}
}

func (_c *StatsRepository_Update_Call) Run(run func(ctx context.Context, statsID string, fields map[string]interface{})) *StatsRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(map[string]interface{}))
	})
	return _c
}

func (_c *StatsRepository_Update_Call) Return(_a0 error) *StatsRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *StatsRepository_Update_Call) RunAndReturn(run func(context.Context, string, map[string]interface{}) error) *StatsRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// NewStatsRepository creates a new instance of StatsRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewStatsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsRepository {
	mock := &StatsRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import (
	ports "blogapi.app/internal/ports"
	"github.com/stretchr/testify/mock"
)

// ConfigProvider is an autogenerated mock type for the ConfigProvider type
type ConfigProvider struct {
	mock.Mock
}

type ConfigProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *ConfigProvider) EXPECT() *ConfigProvider_Expecter {
	return &ConfigProvider_Expecter{mock: &_m.Mock}
}

// GetAppConfig provides a mock function with given fields:
func (_m *ConfigProvider) GetAppConfig() ports.AppConfig {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetAppConfig")
	}

	var r0 ports.AppConfig
	if rf, ok := ret.Get(0).(func() ports.AppConfig); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(ports.AppConfig)
	}

	return r0
}

// ConfigProvider_GetAppConfig_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetAppConfig'
type ConfigProvider_GetAppConfig_Call struct {
	*mock.Call
}

// GetAppConfig is a helper method to define mock.On call
func (_e *ConfigProvider_Expecter) GetAppConfig() *ConfigProvider_GetAppConfig_Call {
	return &ConfigProvider_GetAppConfig_Call{Call: _e.mock.On("GetAppConfig")}
}

func (_c *ConfigProvider_GetAppConfig_Call) Run(run func()) *ConfigProvider_GetAppConfig_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *ConfigProvider_GetAppConfig_Call) Return(_a0 ports.AppConfig) *ConfigProvider_GetAppConfig_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *ConfigProvider_GetAppConfig_Call) RunAndReturn(run func() ports.AppConfig) *ConfigProvider_GetAppConfig_Call {
	_c.Call.Return(run)
	return _c
}

// GetBackendConfig provides a mock function with given fields:
func (_m *ConfigProvider) GetBackendConfig() ports.BackendConfig {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetBackendConfig")
	}

	var r0 ports.BackendConfig
	if rf, ok := ret.Get(0).(func() ports.BackendConfig); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(ports.BackendConfig)
	}

	return r0
}

// ConfigProvider_GetBackendConfig_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBackendConfig'
type ConfigProvider_GetBackendConfig_Call struct {
	*mock.Call
}

// GetBackendConfig is a helper method to define mock.On call
func (_e *ConfigProvider_Expecter) GetBackendConfig() *ConfigProvider_GetBackendConfig_Call {
	return &ConfigProvider_GetBackendConfig_Call{Call: _e.mock.On("GetBackendConfig")}
}

func (_c *ConfigProvider_GetBackendConfig_Call) Run(run func()) *ConfigProvider_GetBackendConfig_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *ConfigProvider_GetBackendConfig_Call) Return(_a0 ports.BackendConfig) *ConfigProvider_GetBackendConfig_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *ConfigProvider_GetBackendConfig_Call) RunAndReturn(run func() ports.BackendConfig) *ConfigProvider_GetBackendConfig_Call {
	_c.Call.Return(run)
	return _c
}

// GetCacheTTLConfig provides a mock function with given fields:
func (_m *ConfigProvider) GetCacheTTLConfig() ports.CacheTTLConfig {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetCacheTTLConfig")
	}

	var r0 ports.CacheTTLConfig
	if rf, ok := ret.Get(0).(func() ports.CacheTTLConfig); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(ports.CacheTTLConfig)
	}

	return r0
}

// ConfigProvider_GetCacheTTLConfig_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetCacheTTLConfig'
type ConfigProvider_GetCacheTTLConfig_Call struct {
	*mock.Call
}

// GetCacheTTLConfig is a helper method to define mock.On call
func (_e *ConfigProvider_Expecter) GetCacheTTLConfig() *ConfigProvider_GetCacheTTLConfig_Call {
	return &ConfigProvider_GetCacheTTLConfig_Call{Call: _e.mock.On("GetCacheTTLConfig")}
}

func (_c *ConfigProvider_GetCacheTTLConfig_Call) Run(run func()) *ConfigProvider_GetCacheTTLConfig_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *ConfigProvider_GetCacheTTLConfig_Call) Return(_a0 ports.CacheTTLConfig) *ConfigProvider_GetCacheTTLConfig_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *ConfigProvider_GetCacheTTLConfig_Call) RunAndReturn(run func() ports.CacheTTLConfig) *ConfigProvider_GetCacheTTLConfig_Call {
	_c.Call.Return(run)
	return _c
}

// GetContactConfig provides a mock function with given fields:
func (_m *ConfigProvider) GetContactConfig() ports.ContactConfig {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetContactConfig")
	}

	var r0 ports.ContactConfig
	if rf, ok := ret.Get(0).(func() ports.ContactConfig); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(ports.ContactConfig)
	}

	return r0
}

// ConfigProvider_GetContactConfig_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetContactConfig'
type ConfigProvider_GetContactConfig_Call struct {
	*mock.Call
}

// GetContactConfig is a helper method to define mock.On call
func (_e *ConfigProvider_Expecter) GetContactConfig() *ConfigProvider_GetContactConfig_Call {
	return &ConfigProvider_GetContactConfig_Call{Call: _e.mock.On("GetContactConfig")}
}

func (_c *ConfigProvider_GetContactConfig_Call) Run(run func()) *ConfigProvider_GetContactConfig_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *ConfigProvider_GetContactConfig_Call) Return(_a0 ports.ContactConfig) *ConfigProvider_GetContactConfig_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *ConfigProvider_GetContactConfig_Call) RunAndReturn(run func() ports.ContactConfig) *ConfigProvider_GetContactConfig_Call {
	_c.Call.Return(run)
	return _c
}

// GetCooldownConfig provides a mock function with given fields:
func (_m *ConfigProvider) GetCooldownConfig() ports.CooldownConfig {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetCooldownConfig")
	}

	var r0 ports.CooldownConfig
	if rf, ok := ret.Get(0).(func() ports.CooldownConfig); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(ports.CooldownConfig)
	}

	return r0
}

// ConfigProvider_GetCooldownConfig_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetCooldownConfig'
type ConfigProvider_GetCooldownConfig_Call struct {
	*mock.Call
}

// GetCooldownConfig is a helper method to define mock.On call
func (_e *ConfigProvider_Expecter) GetCooldownConfig() *ConfigProvider_GetCooldownConfig_Call {
	return &ConfigProvider_GetCooldownConfig_Call{Call: _e.mock.On("GetCooldownConfig")}
}

func (_c *ConfigProvider_GetCooldownConfig_Call) Run(run func()) *ConfigProvider_GetCooldownConfig_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *ConfigProvider_GetCooldownConfig_Call) Return(_a0 ports.CooldownConfig) *ConfigProvider_GetCooldownConfig_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *ConfigProvider_GetCooldownConfig_Call) RunAndReturn(run func() ports.CooldownConfig) *ConfigProvider_GetCooldownConfig_Call {
	_c.Call.Return(run)
	return _c
}

// GetViewsConfig provides a mock function with given fields:
func (_m *ConfigProvider) GetViewsConfig() ports.ViewsConfig {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetViewsConfig")
	}

	var r0 ports.ViewsConfig
	if rf, ok := ret.Get(0).(func() ports.ViewsConfig); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(ports.ViewsConfig)
	}

	return r0
}

// ConfigProvider_GetViewsConfig_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetViewsConfig'
type ConfigProvider_GetViewsConfig_Call struct {
	*mock.Call
}

// GetViewsConfig is a helper method to define mock.On call
func (_e *ConfigProvider_Expecter) GetViewsConfig() *ConfigProvider_GetViewsConfig_Call {
	return &ConfigProvider_GetViewsConfig_Call{Call: _e.mock.On("GetViewsConfig")}
}

func (_c *ConfigProvider_GetViewsConfig_Call) Run(run func()) *ConfigProvider_GetViewsConfig_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *ConfigProvider_GetViewsConfig_Call) Return(_a0 ports.ViewsConfig) *ConfigProvider_GetViewsConfig_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *ConfigProvider_GetViewsConfig_Call) RunAndReturn(run func() ports.ViewsConfig) *ConfigProvider_GetViewsConfig_Call {
	_c.Call.Return(run)
	return _c
}

// NewConfigProvider creates a new instance of ConfigProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewConfigProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConfigProvider {
	mock := &ConfigProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import "github.com/stretchr/testify/mock"

const maxLoggedFields = 6

// NewLoggerAllowingAll returns a Logger mock that accepts any log call at any
// level with up to maxLoggedFields fields. Calls are still recorded, so tests
// can assert on them with AssertCalled.
func NewLoggerAllowingAll(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	l := NewLogger(t)
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		for n := 0; n <= maxLoggedFields; n++ {
			args := make([]interface{}, n+1)
			for i := range args {
				args[i] = mock.Anything
			}
			l.On(level, args...).Maybe()
		}
	}
	return l
}

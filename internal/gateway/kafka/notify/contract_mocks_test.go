// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notify_test
//

// Package notify_test is a generated GoMock package.
package notify_test

import (
	context "context"
	logger "parcelnet/pkg/logger"
	reflect "reflect"

	sarama "github.com/IBM/sarama"
	gomock "go.uber.org/mock/gomock"
)

// Mockproducer is a mock of producer interface.
type Mockproducer struct {
	ctrl     *gomock.Controller
	recorder *MockproducerMockRecorder
	isgomock struct{}
}

// MockproducerMockRecorder is the mock recorder for Mockproducer.
type MockproducerMockRecorder struct {
	mock *Mockproducer
}

// NewMockproducer creates a new mock instance.
func NewMockproducer(ctrl *gomock.Controller) *Mockproducer {
	mock := &Mockproducer{ctrl: ctrl}
	mock.recorder = &MockproducerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Mockproducer) EXPECT() *MockproducerMockRecorder {
	return m.recorder
}

// SendMessage mocks base method.
func (m *Mockproducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMessage", msg)
	ret0, _ := ret[0].(int32)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SendMessage indicates an expected call of SendMessage.
func (mr *MockproducerMockRecorder) SendMessage(msg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMessage", reflect.TypeOf((*Mockproducer)(nil).SendMessage), msg)
}

// Mockretrier is a mock of retrier interface.
type Mockretrier struct {
	ctrl     *gomock.Controller
	recorder *MockretrierMockRecorder
	isgomock struct{}
}

// MockretrierMockRecorder is the mock recorder for Mockretrier.
type MockretrierMockRecorder struct {
	mock *Mockretrier
}

// NewMockretrier creates a new mock instance.
func NewMockretrier(ctrl *gomock.Controller) *Mockretrier {
	mock := &Mockretrier{ctrl: ctrl}
	mock.recorder = &MockretrierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Mockretrier) EXPECT() *MockretrierMockRecorder {
	return m.recorder
}

// ExecuteWithContext mocks base method.
func (m *Mockretrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExecuteWithContext", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExecuteWithContext indicates an expected call of ExecuteWithContext.
func (mr *MockretrierMockRecorder) ExecuteWithContext(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteWithContext", reflect.TypeOf((*Mockretrier)(nil).ExecuteWithContext), ctx, fn)
}

// MockgatewayLogger is a mock of gatewayLogger interface.
type MockgatewayLogger struct {
	ctrl     *gomock.Controller
	recorder *MockgatewayLoggerMockRecorder
	isgomock struct{}
}

// MockgatewayLoggerMockRecorder is the mock recorder for MockgatewayLogger.
type MockgatewayLoggerMockRecorder struct {
	mock *MockgatewayLogger
}

// NewMockgatewayLogger creates a new mock instance.
func NewMockgatewayLogger(ctrl *gomock.Controller) *MockgatewayLogger {
	mock := &MockgatewayLogger{ctrl: ctrl}
	mock.recorder = &MockgatewayLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockgatewayLogger) EXPECT() *MockgatewayLoggerMockRecorder {
	return m.recorder
}

// Error mocks base method.
func (m *MockgatewayLogger) Error(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MockgatewayLoggerMockRecorder) Error(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockgatewayLogger)(nil).Error), varargs...)
}

// Warn mocks base method.
func (m *MockgatewayLogger) Warn(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MockgatewayLoggerMockRecorder) Warn(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MockgatewayLogger)(nil).Warn), varargs...)
}

// With mocks base method.
func (m *MockgatewayLogger) With(fields ...logger.Field) logger.Logger {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "With", varargs...)
	ret0, _ := ret[0].(logger.Logger)
	return ret0
}

// With indicates an expected call of With.
func (mr *MockgatewayLoggerMockRecorder) With(fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "With", reflect.TypeOf((*MockgatewayLogger)(nil).With), fields...)
}

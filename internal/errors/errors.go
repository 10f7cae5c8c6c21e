package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType 定义错误类型
type ErrorType string

const (
	ErrorTypeUnsupportedMediaType ErrorType = "unsupported_media_type"
	ErrorTypeMalformedPayload     ErrorType = "malformed_payload"
	ErrorTypeValidation           ErrorType = "validation_error"
	ErrorTypeNotFound             ErrorType = "not_found"
	ErrorTypeMethodNotAllowed     ErrorType = "method_not_allowed"
	ErrorTypeInternal             ErrorType = "internal_error"
)

// 对外暴露的错误代码
const (
	CodeUnsupportedMediaType = "UnsupportedMediaType"
	CodeMalformedPayload     = "MalformedPayload"
	CodeValidationError      = "ValidationError"
	CodeNotFound             = "NotFound"
	CodeMethodNotAllowed     = "MethodNotAllowed"
	CodeInternalError        = "InternalError"
)

// typeInfo 错误类型 -> (代码, HTTP 状态)，唯一的映射表
var typeInfo = map[ErrorType]struct {
	code   string
	status int
}{
	ErrorTypeUnsupportedMediaType: {CodeUnsupportedMediaType, http.StatusUnsupportedMediaType},
	ErrorTypeMalformedPayload:     {CodeMalformedPayload, http.StatusBadRequest},
	ErrorTypeValidation:           {CodeValidationError, http.StatusBadRequest},
	ErrorTypeNotFound:             {CodeNotFound, http.StatusNotFound},
	ErrorTypeMethodNotAllowed:     {CodeMethodNotAllowed, http.StatusMethodNotAllowed},
	ErrorTypeInternal:             {CodeInternalError, http.StatusInternalServerError},
}

// AppError 应用程序错误结构
type AppError struct {
	Type    ErrorType
	Message string // 可以返回给调用方的消息
	Err     error  // 内部原因，只写日志
	Code    string
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap 实现错误链接
func (e *AppError) Unwrap() error {
	return e.Err
}

// Status 返回错误对应的 HTTP 状态码
func (e *AppError) Status() int {
	if info, ok := typeInfo[e.Type]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// NewAppError 创建新的 AppError
func NewAppError(errType ErrorType, message string, originalError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     originalError,
		Code:    generateErrorCode(errType),
	}
}

// NewUnsupportedMediaTypeError 请求不是 JSON
func NewUnsupportedMediaTypeError(message string) *AppError {
	return NewAppError(ErrorTypeUnsupportedMediaType, message, nil)
}

// NewMalformedPayloadError 请求体无法解析
func NewMalformedPayloadError(message string, originalError error) *AppError {
	return NewAppError(ErrorTypeMalformedPayload, message, originalError)
}

// NewValidationError 创建验证错误
func NewValidationError(message string, originalError error) *AppError {
	return NewAppError(ErrorTypeValidation, message, originalError)
}

// NewNotFoundError 创建未找到错误
func NewNotFoundError(message string) *AppError {
	return NewAppError(ErrorTypeNotFound, message, nil)
}

// NewMethodNotAllowedError 路由存在但方法不支持
func NewMethodNotAllowedError(message string) *AppError {
	return NewAppError(ErrorTypeMethodNotAllowed, message, nil)
}

// NewInternalError 创建内部错误
func NewInternalError(message string, originalError error) *AppError {
	return NewAppError(ErrorTypeInternal, message, originalError)
}

// AsAppError 从错误链中提取 AppError
func AsAppError(err error) (*AppError, bool) {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError, true
	}
	return nil, false
}

// IsType 检查错误链中是否包含指定类型的 AppError
func IsType(err error, errType ErrorType) bool {
	appError, ok := AsAppError(err)
	return ok && appError.Type == errType
}

// IsValidationError 检查是否为验证错误
func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsMalformedPayloadError 检查是否为请求体解析错误
func IsMalformedPayloadError(err error) bool {
	return IsType(err, ErrorTypeMalformedPayload)
}

// IsUnsupportedMediaTypeError 检查是否为媒体类型错误
func IsUnsupportedMediaTypeError(err error) bool {
	return IsType(err, ErrorTypeUnsupportedMediaType)
}

// generateErrorCode 根据错误类型生成错误代码
func generateErrorCode(errType ErrorType) string {
	if info, ok := typeInfo[errType]; ok {
		return info.code
	}
	return CodeInternalError
}

// WrapError 包装现有错误
func WrapError(err error, message string, errType ErrorType) error {
	if err == nil {
		return nil
	}

	if appError, ok := AsAppError(err); ok {
		// 如果已经是 AppError，保留类型，只更新消息
		return &AppError{
			Type:    appError.Type,
			Message: fmt.Sprintf("%s: %s", message, appError.Message),
			Err:     appError,
			Code:    appError.Code,
		}
	}

	return NewAppError(errType, message, err)
}

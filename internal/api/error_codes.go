// internal/api/error_codes.go
package api

import apperrors "github.com/Corphon/SegmentationAPI/internal/errors"

// API错误代码常量
const (
	ErrorUnsupportedMediaType = apperrors.CodeUnsupportedMediaType
	ErrorMalformedPayload     = apperrors.CodeMalformedPayload
	ErrorValidation           = apperrors.CodeValidationError
	ErrorNotFound             = apperrors.CodeNotFound
	ErrorMethodNotAllowed     = apperrors.CodeMethodNotAllowed
	ErrorInternalError        = apperrors.CodeInternalError
)

// 响应消息
const (
	MsgWelcome      = "Welcome to the Segmentation API"
	MsgHealthy      = "Service is running"
	MsgSegmented    = "Text segmented successfully"
	MsgNotJSON      = "Request must be JSON"
	MsgInvalidJSON  = "Request contains invalid JSON"
	MsgTextRequired = "Text field is required and must be a string"
	MsgUnexpected   = "An unexpected error occurred"
	MsgNotFound     = "Resource not found"
	MsgNotAllowed   = "Method not allowed"
)

// internal/api/response_helpers.go
package api

import (
	"net/http"

	apperrors "github.com/Corphon/SegmentationAPI/internal/errors"
	"github.com/Corphon/SegmentationAPI/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Envelope 所有接口统一的响应格式，四个字段始终存在
type Envelope struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Error   *string     `json:"error"`
}

// NewEnvelope 构建响应，errorCode 为空表示成功
func NewEnvelope(data interface{}, message string, status int, errorCode string) Envelope {
	env := Envelope{
		Data:    data,
		Message: message,
		Status:  status,
	}
	if errorCode != "" {
		env.Error = &errorCode
	}
	return env
}

// ResponseHelper 响应助手类，所有响应都经过 Respond 写出
type ResponseHelper struct {
	logger  *zap.Logger
	metrics *utils.APIMetrics
}

// NewResponseHelper 创建响应助手
func NewResponseHelper(logger *zap.Logger, metrics *utils.APIMetrics) *ResponseHelper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponseHelper{
		logger:  logger,
		metrics: metrics,
	}
}

// Respond 写出响应，HTTP 状态码与 envelope.Status 一致
func (rh *ResponseHelper) Respond(c *gin.Context, env Envelope) {
	if c.Writer.Written() {
		rh.logger.Warn("response already written, dropping envelope",
			zap.String("request_id", rh.getRequestID(c)),
			zap.Int("status", env.Status),
			zap.String("message", env.Message))
		return
	}
	c.JSON(env.Status, env)
}

// Success 成功响应
func (rh *ResponseHelper) Success(c *gin.Context, data interface{}, message string) {
	rh.Respond(c, NewEnvelope(data, message, http.StatusOK, ""))
}

// Fail 将错误映射为响应。非 AppError 与内部错误只记录日志，调用方只看到通用消息。
func (rh *ResponseHelper) Fail(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Type == apperrors.ErrorTypeInternal {
		rh.logger.Error("Error processing request",
			zap.String("request_id", rh.getRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
			zap.Stack("stack"))
		appErr = apperrors.NewInternalError(MsgUnexpected, err)
	}

	if rh.metrics != nil {
		rh.metrics.RecordError(appErr.Code)
	}
	rh.Respond(c, NewEnvelope(nil, appErr.Message, appErr.Status(), appErr.Code))
}

// getRequestID 获取请求ID
func (rh *ResponseHelper) getRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

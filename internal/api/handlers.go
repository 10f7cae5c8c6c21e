// internal/api/handlers.go
package api

import (
	apperrors "github.com/Corphon/SegmentationAPI/internal/errors"
	"github.com/Corphon/SegmentationAPI/internal/models"
	"github.com/gin-gonic/gin"
)

// Segmenter 文本切分
type Segmenter interface {
	Process(text string) *models.SegmentResult
}

// Handler 处理API请求
type Handler struct {
	Segmenter Segmenter       // 切分服务
	Response  *ResponseHelper // 响应助手
}

// NewHandler 创建API处理器
func NewHandler(segmenter Segmenter, response *ResponseHelper) *Handler {
	return &Handler{
		Segmenter: segmenter,
		Response:  response,
	}
}

// Index GET /
func (h *Handler) Index(c *gin.Context) {
	h.Response.Success(c, nil, MsgWelcome)
}

// HealthCheck GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	h.Response.Success(c, nil, MsgHealthy)
}

// SegmentText POST /segment
func (h *Handler) SegmentText(c *gin.Context) {
	text, err := ValidateSegmentRequest(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	result := h.Segmenter.Process(text)
	h.Response.Success(c, result, MsgSegmented)
}

// NotFound 未匹配的路由
func (h *Handler) NotFound(c *gin.Context) {
	_ = c.Error(apperrors.NewNotFoundError(MsgNotFound))
}

// MethodNotAllowed 路由存在但方法不匹配
func (h *Handler) MethodNotAllowed(c *gin.Context) {
	_ = c.Error(apperrors.NewMethodNotAllowedError(MsgNotAllowed))
}

// internal/api/validator.go
package api

import (
	"encoding/json"
	"errors"
	"mime"
	"strings"
	"unicode/utf8"

	apperrors "github.com/Corphon/SegmentationAPI/internal/errors"
	"github.com/gin-gonic/gin"
)

var errInvalidUTF8 = errors.New("request body is not valid UTF-8")

// ValidateSegmentRequest 校验 POST /segment 请求并取出 text。
// 检查顺序固定：Content-Type、JSON 语法、text 字段。
func ValidateSegmentRequest(c *gin.Context) (string, error) {
	if !isJSONContentType(c.GetHeader("Content-Type")) {
		return "", apperrors.NewUnsupportedMediaTypeError(MsgNotJSON)
	}

	body, err := c.GetRawData()
	if err != nil {
		return "", apperrors.NewMalformedPayloadError(MsgInvalidJSON, err)
	}
	// JSON 文本必须是合法 UTF-8，json.Unmarshal 会把坏字节静默替换为 U+FFFD
	if !utf8.Valid(body) {
		return "", apperrors.NewMalformedPayloadError(MsgInvalidJSON, errInvalidUTF8)
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", apperrors.NewMalformedPayloadError(MsgInvalidJSON, err)
	}

	object, ok := payload.(map[string]interface{})
	if !ok {
		return "", apperrors.NewValidationError(MsgTextRequired, nil)
	}
	text, ok := object["text"].(string)
	if !ok {
		return "", apperrors.NewValidationError(MsgTextRequired, nil)
	}

	return text, nil
}

// isJSONContentType 接受 application/json 与 application/*+json，忽略参数
func isJSONContentType(header string) bool {
	if header == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	if mediaType == "application/json" {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}

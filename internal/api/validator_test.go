package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/Corphon/SegmentationAPI/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidatorContext(contentType, body string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/segment", strings.NewReader(body))
	if contentType != "" {
		c.Request.Header.Set("Content-Type", contentType)
	}
	return c
}

func TestValidateSegmentRequest(t *testing.T) {
	text, err := ValidateSegmentRequest(newValidatorContext("application/json", `{"text":"  keep  spacing "}`))
	require.NoError(t, err)
	assert.Equal(t, "  keep  spacing ", text)

	_, err = ValidateSegmentRequest(newValidatorContext("text/html", `{"text":"x"}`))
	assert.True(t, apperrors.IsUnsupportedMediaTypeError(err))

	_, err = ValidateSegmentRequest(newValidatorContext("application/json", `{`))
	assert.True(t, apperrors.IsMalformedPayloadError(err))

	_, err = ValidateSegmentRequest(newValidatorContext("application/json", `{"text":["x"]}`))
	assert.True(t, apperrors.IsValidationError(err))
}

func TestIsJSONContentType(t *testing.T) {
	accepted := []string{
		"application/json",
		"application/json;charset=UTF-8",
		"application/problem+json",
	}
	for _, ct := range accepted {
		assert.True(t, isJSONContentType(ct), ct)
	}

	rejected := []string{
		"",
		"text/json",
		"application/xml",
		"multipart/form-data; boundary=x",
		"application/json; charset=\"unterminated",
		"json",
	}
	for _, ct := range rejected {
		assert.False(t, isJSONContentType(ct), ct)
	}
}

// internal/services/segmentation_service.go
package services

import (
	"strings"
	"unicode"

	"github.com/Corphon/SegmentationAPI/internal/models"
	"go.uber.org/zap"
)

// Delimiter 句子分隔符，按字面切分
const Delimiter = "."

// SegmentationRecorder 记录切分指标
type SegmentationRecorder interface {
	RecordSegmentation(textBytes, segments int)
}

// SegmentationService 文本切分服务，无状态，可并发调用
type SegmentationService struct {
	recorder SegmentationRecorder
	logger   *zap.Logger
}

// NewSegmentationService 创建切分服务，recorder 可以为 nil
func NewSegmentationService(recorder SegmentationRecorder, logger *zap.Logger) *SegmentationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SegmentationService{
		recorder: recorder,
		logger:   logger,
	}
}

// Process 切分文本并记录指标
func (s *SegmentationService) Process(text string) *models.SegmentResult {
	segments := Segment(text)

	if s.recorder != nil {
		s.recorder.RecordSegmentation(len(text), len(segments))
	}
	s.logger.Debug("text segmented",
		zap.Int("text_bytes", len(text)),
		zap.Int("segments", len(segments)))

	return &models.SegmentResult{Segments: segments}
}

// Segment 按 "." 切分，去除首尾空白并丢弃空片段，保持原有顺序。
// 返回值永远非 nil。
func Segment(text string) []string {
	segments := make([]string, 0, strings.Count(text, Delimiter)+1)
	for _, piece := range strings.Split(text, Delimiter) {
		if piece = strings.TrimFunc(piece, isSegmentSpace); piece != "" {
			segments = append(segments, piece)
		}
	}
	return segments
}

// isSegmentSpace 在 unicode.IsSpace 之外还包含信息分隔符 U+001C–U+001F
func isSegmentSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}

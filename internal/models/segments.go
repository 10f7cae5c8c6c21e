package models

// SegmentRequest POST /segment 的请求体
type SegmentRequest struct {
	Text string `json:"text"`
}

// SegmentResult 切分结果，segments 为空时序列化为 []
type SegmentResult struct {
	Segments []string `json:"segments"`
}

package model

import "github.com/happybirthday/ai-server/common/config"

type ImageRequest struct {
	Prompt      string `json:"prompt" binding:"required,notblank"`
	Model       string `json:"model,omitempty"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
}

// WithDefaults returns a copy with the configured model and aspect ratio filled in.
func (r ImageRequest) WithDefaults() ImageRequest {
	if r.Model == "" {
		r.Model = config.DefaultImageModel
	}
	if r.AspectRatio == "" {
		r.AspectRatio = config.DefaultAspectRatio
	}
	return r
}

// Prediction 兼容旧版前端的 predictions 结构，bytesBase64Encoded 始终为 null
type Prediction struct {
	BytesBase64Encoded *string `json:"bytesBase64Encoded"`
	URL                string  `json:"url"`
}

type ImageResponse struct {
	URL         string       `json:"url"`
	Predictions []Prediction `json:"predictions"`
}

func NewImageResponse(url string) ImageResponse {
	return ImageResponse{
		URL:         url,
		Predictions: []Prediction{{BytesBase64Encoded: nil, URL: url}},
	}
}

package model

import "github.com/happybirthday/ai-server/common/config"

type VideoRequest struct {
	Prompt   string `json:"prompt" binding:"required,notblank"`
	ImageURL string `json:"image_url,omitempty"`
	Model    string `json:"model,omitempty"`
}

func (r VideoRequest) WithDefaults() VideoRequest {
	if r.Model == "" {
		r.Model = config.DefaultVideoModel
	}
	return r
}

type VideoResponse struct {
	URL string `json:"url"`
}

package model

type ResizeRequest struct {
	InputPath  string `json:"input_path" binding:"required"`
	OutputPath string `json:"output_path" binding:"required"`
	Width      int    `json:"width" binding:"required,gt=0"`
	Height     int    `json:"height" binding:"required,gt=0"`
}

type ResizeResponse struct {
	Status     string `json:"status"`
	OutputPath string `json:"output_path"`
}

// VideoInfoQuery leaves path optional; an empty path is reported as a missing file.
type VideoInfoQuery struct {
	Path string `form:"path"`
}

// VideoInfo holds ffprobe's container metadata and the first video stream, if any.
type VideoInfo struct {
	Format      map[string]any `json:"format"`
	VideoStream map[string]any `json:"video_stream"`
}

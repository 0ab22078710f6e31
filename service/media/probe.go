package media

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/happybirthday/ai-server/common/logger"
	"github.com/happybirthday/ai-server/relay/model"
	"github.com/pkg/errors"
)

// Stream is one ffprobe stream entry kept verbatim.
type Stream map[string]any

func (s Stream) CodecType() string {
	v, _ := s["codec_type"].(string)
	return v
}

// ProbeResult is the decoded `ffprobe -show_format -show_streams` document.
type ProbeResult struct {
	Streams []Stream       `json:"streams"`
	Format  map[string]any `json:"format"`
}

// FirstVideoStream returns nil when the container has no video stream.
func (r ProbeResult) FirstVideoStream() Stream {
	for _, stream := range r.Streams {
		if stream.CodecType() == "video" {
			return stream
		}
	}
	return nil
}

func (t *Transcoder) Probe(ctx context.Context, path string) (ProbeResult, error) {
	args := []string{"-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path}
	stdout, stderr, err := t.Runner.Run(ctx, t.FFprobePath, args...)
	if err != nil {
		logger.Errorf(ctx, "ffprobe error: %s", strings.TrimSpace(string(stderr)))
		return ProbeResult{}, &CommandError{Tool: "ffprobe", Args: args, Stderr: string(stderr), Err: err}
	}
	var result ProbeResult
	if err := json.Unmarshal(stdout, &result); err != nil {
		return ProbeResult{}, errors.Wrap(err, "ffprobe parse")
	}
	return result, nil
}

// GetVideoInfo returns container metadata and the first video stream (nil if there is none).
func (t *Transcoder) GetVideoInfo(ctx context.Context, path string) (model.VideoInfo, error) {
	result, err := t.Probe(ctx, path)
	if err != nil {
		return model.VideoInfo{}, err
	}
	info := model.VideoInfo{Format: result.Format}
	if stream := result.FirstVideoStream(); stream != nil {
		info.VideoStream = stream
	}
	return info, nil
}

package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/happybirthday/ai-server/common/logger"
)

// Transcoder wraps the ffmpeg and ffprobe command line tools.
// Callers are expected to check that input files exist.
type Transcoder struct {
	FFmpegPath  string
	FFprobePath string
	Runner      Runner
}

func NewTranscoder(ffmpegPath string, ffprobePath string) *Transcoder {
	if strings.TrimSpace(ffmpegPath) == "" {
		ffmpegPath = "ffmpeg"
	}
	if strings.TrimSpace(ffprobePath) == "" {
		ffprobePath = "ffprobe"
	}
	return &Transcoder{FFmpegPath: ffmpegPath, FFprobePath: ffprobePath, Runner: ExecRunner{}}
}

// ResizeVideo scales input to exactly width x height, overwriting outputPath.
func (t *Transcoder) ResizeVideo(ctx context.Context, inputPath string, outputPath string, width int, height int) (string, error) {
	args := []string{"-y", "-i", inputPath, "-vf", fmt.Sprintf("scale=%d:%d", width, height), outputPath}
	if err := t.ffmpeg(ctx, args); err != nil {
		return "", err
	}
	return outputPath, nil
}

// ConvertVideo re-encodes into the container implied by outputPath's extension.
func (t *Transcoder) ConvertVideo(ctx context.Context, inputPath string, outputPath string) (string, error) {
	if err := t.ffmpeg(ctx, []string{"-y", "-i", inputPath, outputPath}); err != nil {
		return "", err
	}
	return outputPath, nil
}

// ConcatVideos joins inputs with the concat filter (one video and one audio stream each).
func (t *Transcoder) ConcatVideos(ctx context.Context, inputPaths []string, outputPath string) (string, error) {
	if len(inputPaths) == 0 {
		return "", fmt.Errorf("concat videos: no inputs")
	}
	args := []string{"-y"}
	var filter strings.Builder
	for i, path := range inputPaths {
		args = append(args, "-i", path)
		fmt.Fprintf(&filter, "[%d:v][%d:a]", i, i)
	}
	fmt.Fprintf(&filter, "concat=n=%d:v=1:a=1[v][a]", len(inputPaths))
	args = append(args, "-filter_complex", filter.String(), "-map", "[v]", "-map", "[a]", outputPath)
	if err := t.ffmpeg(ctx, args); err != nil {
		return "", err
	}
	return outputPath, nil
}

// AddOverlayText draws text centered over the video in white, 24px.
func (t *Transcoder) AddOverlayText(ctx context.Context, inputPath string, outputPath string, text string) (string, error) {
	filter := fmt.Sprintf("drawtext=text='%s':fontcolor=white:fontsize=24:x=(w-text_w)/2:y=(h-text_h)/2", escapeDrawtext(text))
	if err := t.ffmpeg(ctx, []string{"-y", "-i", inputPath, "-vf", filter, outputPath}); err != nil {
		return "", err
	}
	return outputPath, nil
}

func (t *Transcoder) ffmpeg(ctx context.Context, args []string) error {
	_, stderr, err := t.Runner.Run(ctx, t.FFmpegPath, args...)
	if err != nil {
		logger.Errorf(ctx, "ffmpeg error: %s", strings.TrimSpace(string(stderr)))
		return &CommandError{Tool: "ffmpeg", Args: args, Stderr: string(stderr), Err: err}
	}
	return nil
}

// escapeDrawtext quotes characters that end the drawtext text value.
func escapeDrawtext(text string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`'`, `'\''`,
		`:`, `\:`,
		`%`, `\%`,
	)
	return replacer.Replace(text)
}

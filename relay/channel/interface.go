package channel

import (
	"context"

	"github.com/happybirthday/ai-server/relay/model"
)

// MediaGenerator produces a media URL from a prompt. Model identifiers are passed through verbatim.
type MediaGenerator interface {
	GenerateImage(ctx context.Context, prompt string, model string, aspectRatio string) (string, error)
	GenerateVideo(ctx context.Context, prompt string, imageURL string, model string) (string, error)
}

type PromptRefiner interface {
	RefinePrompt(ctx context.Context, profile model.UserProfile) (string, error)
}

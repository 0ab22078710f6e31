package gemini

import (
	"context"
	"net/http"
	"strings"

	"github.com/happybirthday/ai-server/common/logger"
	"github.com/happybirthday/ai-server/relay/model"
	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-1.5-flash"

// contentGenerator is satisfied by *genai.Models.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Refiner turns a user profile into a video prompt. Model failures degrade to a
// templated prompt, so RefinePrompt always returns a nil error.
type Refiner struct {
	models    contentGenerator
	modelName string
}

// NewRefiner builds a Gemini-backed refiner. An empty apiKey yields a template-only refiner.
func NewRefiner(ctx context.Context, apiKey string, modelName string, httpClient *http.Client) (*Refiner, error) {
	if modelName == "" {
		modelName = DefaultModel
	}
	if apiKey == "" {
		logger.SysWarn("GEMINI_API_KEY is not set for prompt refinement, using templated prompts")
		return &Refiner{modelName: modelName}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	return &Refiner{models: client.Models, modelName: modelName}, nil
}

func (r *Refiner) RefinePrompt(ctx context.Context, profile model.UserProfile) (string, error) {
	if r.models == nil {
		return TemplatePrompt(profile), nil
	}

	resp, err := r.models.GenerateContent(ctx, r.modelName, genai.Text(BuildInstruction(profile)), nil)
	if err != nil {
		logger.Errorf(ctx, "error refining prompt: %s", err.Error())
		return FallbackPrompt(profile), nil
	}
	text := ""
	if resp != nil {
		text = strings.TrimSpace(resp.Text())
	}
	if text == "" {
		logger.Warn(ctx, "gemini returned an empty prompt, using fallback")
		return FallbackPrompt(profile), nil
	}
	return text, nil
}

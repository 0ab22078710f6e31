package replicate

import (
	"context"
	"net/http"
	"time"

	"github.com/happybirthday/ai-server/common/logger"
	"github.com/pkg/errors"
	"github.com/replicate/replicate-go"
)

// predictor is the slice of the Replicate SDK the adaptor depends on.
type predictor interface {
	Run(ctx context.Context, model string, input map[string]any) (any, error)
}

type sdkPredictor struct {
	client       *replicate.Client
	pollInterval time.Duration
}

// Run accepts "owner/name" (the model's latest version) and "owner/name:version".
func (p sdkPredictor) Run(ctx context.Context, model string, input map[string]any) (any, error) {
	id, err := replicate.ParseIdentifier(model)
	if err != nil {
		return nil, err
	}

	var prediction *replicate.Prediction
	if id.Version == nil {
		prediction, err = p.client.CreatePredictionWithModel(ctx, id.Owner, id.Name, replicate.PredictionInput(input), nil, false)
	} else {
		prediction, err = p.client.CreatePrediction(ctx, *id.Version, replicate.PredictionInput(input), nil, false)
	}
	if err != nil {
		return nil, err
	}

	if !prediction.Status.Terminated() {
		if err := p.client.Wait(ctx, prediction, replicate.WithPollingInterval(p.pollInterval)); err != nil {
			return nil, err
		}
	}
	if prediction.Status == replicate.Failed || prediction.Status == replicate.Canceled {
		return nil, newPredictionError(prediction)
	}
	return prediction.Output, nil
}

// Adaptor runs image and video models on Replicate.
type Adaptor struct {
	predictor predictor
	initErr   error
}

// NewAdaptor never fails. A missing token is logged here and reported on every call.
func NewAdaptor(token string, httpClient *http.Client) *Adaptor {
	var opts []replicate.ClientOption
	if httpClient != nil {
		opts = append(opts, replicate.WithHTTPClient(httpClient))
	}
	return newAdaptor(token, PollInterval, opts...)
}

func newAdaptor(token string, pollInterval time.Duration, opts ...replicate.ClientOption) *Adaptor {
	if token == "" {
		logger.SysWarn("REPLICATE_API_TOKEN is not set, image and video generation will fail")
		return &Adaptor{initErr: ErrNoToken}
	}
	opts = append([]replicate.ClientOption{replicate.WithToken(token)}, opts...)
	client, err := replicate.NewClient(opts...)
	if err != nil {
		return &Adaptor{initErr: err}
	}
	return &Adaptor{predictor: sdkPredictor{client: client, pollInterval: pollInterval}}
}

func (a *Adaptor) GenerateImage(ctx context.Context, prompt string, model string, aspectRatio string) (string, error) {
	logger.Infof(ctx, "generating image with prompt: %s, model: %s", prompt, model)
	input := ImageInput{Prompt: prompt, AspectRatio: aspectRatio}
	url, err := a.run(ctx, model, input.toPredictionInput())
	if err != nil {
		logger.Errorf(ctx, "error generating image: %s", err.Error())
		return "", err
	}
	return url, nil
}

func (a *Adaptor) GenerateVideo(ctx context.Context, prompt string, imageURL string, model string) (string, error) {
	logger.Infof(ctx, "generating video with prompt: %s, image: %s, model: %s", prompt, imageURL, model)
	input := VideoInput{Prompt: prompt, StartImageURL: imageURL}
	url, err := a.run(ctx, model, input.toPredictionInput())
	if err != nil {
		logger.Errorf(ctx, "error generating video: %s", err.Error())
		return "", err
	}
	return url, nil
}

func (a *Adaptor) run(ctx context.Context, model string, input map[string]any) (string, error) {
	if a.initErr != nil {
		return "", errors.WithStack(a.initErr)
	}
	output, err := a.predictor.Run(ctx, model, input)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return OutputURL(output)
}

package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/common/config"
	"github.com/happybirthday/ai-server/common/validation"
	"github.com/happybirthday/ai-server/relay/channel/gemini"
	"github.com/happybirthday/ai-server/relay/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	url string
	err error

	calls       int
	prompt      string
	model       string
	aspectRatio string
	imageURL    string
}

func (f *fakeGenerator) GenerateImage(ctx context.Context, prompt string, model string, aspectRatio string) (string, error) {
	f.calls++
	f.prompt, f.model, f.aspectRatio = prompt, model, aspectRatio
	return f.url, f.err
}

func (f *fakeGenerator) GenerateVideo(ctx context.Context, prompt string, imageURL string, model string) (string, error) {
	f.calls++
	f.prompt, f.imageURL, f.model = prompt, imageURL, model
	return f.url, f.err
}

type fakeRefiner struct {
	prompt  string
	err     error
	profile model.UserProfile
}

func (f *fakeRefiner) RefinePrompt(ctx context.Context, profile model.UserProfile) (string, error) {
	f.profile = profile
	return f.prompt, f.err
}

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
}

func newAIEngine(ctl *AIController) *gin.Engine {
	r := gin.New()
	r.POST("/ai/refine", ctl.RefinePrompt)
	r.POST("/ai/generate/image", ctl.GenerateImage)
	r.POST("/ai/generate/video", ctl.GenerateVideo)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestGenerateImage(t *testing.T) {
	gen := &fakeGenerator{url: "https://x/img.webp"}
	r := newAIEngine(NewAIController(gen, &fakeRefiner{}))

	w := postJSON(t, r, "/ai/generate/image", `{"prompt":"a cake"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ImageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://x/img.webp", resp.URL)
	require.Len(t, resp.Predictions, 1)
	assert.Equal(t, resp.URL, resp.Predictions[0].URL)
	assert.Nil(t, resp.Predictions[0].BytesBase64Encoded)
	assert.Contains(t, w.Body.String(), `"bytesBase64Encoded":null`)

	assert.Equal(t, "a cake", gen.prompt)
	assert.Equal(t, config.DefaultImageModel, gen.model)
	assert.Equal(t, config.DefaultAspectRatio, gen.aspectRatio)
}

func TestGenerateImageExplicitModel(t *testing.T) {
	gen := &fakeGenerator{url: "https://x/img.webp"}
	r := newAIEngine(NewAIController(gen, &fakeRefiner{}))

	w := postJSON(t, r, "/ai/generate/image", `{"prompt":"a cake","model":"owner/other","aspect_ratio":"1:1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner/other", gen.model)
	assert.Equal(t, "1:1", gen.aspectRatio)
}

func TestGenerateImagePassesAspectRatioThrough(t *testing.T) {
	for _, ratio := range []string{"custom", "match_input_image", "21:9"} {
		t.Run(ratio, func(t *testing.T) {
			gen := &fakeGenerator{url: "https://x/img.webp"}
			r := newAIEngine(NewAIController(gen, &fakeRefiner{}))

			w := postJSON(t, r, "/ai/generate/image", `{"prompt":"a cake","aspect_ratio":"`+ratio+`"}`)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, ratio, gen.aspectRatio)
		})
	}
}

func TestGenerateVideoWithoutImage(t *testing.T) {
	gen := &fakeGenerator{url: "https://x/video.mp4"}
	r := newAIEngine(NewAIController(gen, &fakeRefiner{}))

	w := postJSON(t, r, "/ai/generate/video", `{"prompt":"balloons"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"https://x/video.mp4"}`, w.Body.String())
	assert.Equal(t, "", gen.imageURL)
	assert.Equal(t, config.DefaultVideoModel, gen.model)
}

func TestGenerateVideoWithImage(t *testing.T) {
	gen := &fakeGenerator{url: "https://x/video.mp4"}
	r := newAIEngine(NewAIController(gen, &fakeRefiner{}))

	w := postJSON(t, r, "/ai/generate/video", `{"prompt":"balloons","image_url":"https://x/start.png"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://x/start.png", gen.imageURL)
}

func TestAIEndpointsReportUpstreamErrors(t *testing.T) {
	upstream := errors.New("prediction failed: NSFW content detected")
	gen := &fakeGenerator{err: upstream}
	ref := &fakeRefiner{err: upstream}
	r := newAIEngine(NewAIController(gen, ref))

	cases := map[string]string{
		"/ai/generate/image": `{"prompt":"a cake"}`,
		"/ai/generate/video": `{"prompt":"a cake"}`,
		"/ai/refine":         `{"user_data":{"name":"Ana"}}`,
	}
	for path, body := range cases {
		t.Run(path, func(t *testing.T) {
			w := postJSON(t, r, path, body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, upstream.Error(), decodeBody(t, w)["detail"])
		})
	}
}

func TestAIEndpointsValidation(t *testing.T) {
	gen := &fakeGenerator{url: "https://x/img.webp"}
	r := newAIEngine(NewAIController(gen, &fakeRefiner{}))

	cases := []struct {
		name string
		path string
		body string
	}{
		{"image missing prompt", "/ai/generate/image", `{}`},
		{"image blank prompt", "/ai/generate/image", `{"prompt":"   "}`},
		{"image non-string aspect ratio", "/ai/generate/image", `{"prompt":"a cake","aspect_ratio":169}`},
		{"image malformed json", "/ai/generate/image", `{"prompt":`},
		{"video missing prompt", "/ai/generate/video", `{"image_url":"https://x/a.png"}`},
		{"refine missing user_data", "/ai/refine", `{}`},
		{"refine null user_data", "/ai/refine", `{"user_data":null}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeBody(t, w)["detail"])
		})
	}
	assert.Zero(t, gen.calls)
}

func TestRefinePromptPassesProfile(t *testing.T) {
	ref := &fakeRefiner{prompt: "Cinematic birthday"}
	r := newAIEngine(NewAIController(&fakeGenerator{}, ref))

	w := postJSON(t, r, "/ai/refine", `{"user_data":{"name":"Ana","age":30,"locationName":"Lisbon"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"prompt":"Cinematic birthday"}`, w.Body.String())
	assert.Equal(t, "Ana", ref.profile.Name.Or(""))
	assert.Equal(t, "30", ref.profile.Age.Or(""))
	assert.Equal(t, "Lisbon", ref.profile.LocationName.Or(""))
	assert.False(t, ref.profile.Food.Set)
}

func TestRefinePromptTemplateWithoutKey(t *testing.T) {
	refiner, err := gemini.NewRefiner(context.Background(), "", "", nil)
	require.NoError(t, err)
	r := newAIEngine(NewAIController(&fakeGenerator{}, refiner))

	w := postJSON(t, r, "/ai/refine", `{"user_data":{}}`)
	require.Equal(t, http.StatusOK, w.Code)
	prompt, _ := decodeBody(t, w)["prompt"].(string)
	assert.Contains(t, prompt, "someone")
}

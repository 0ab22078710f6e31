package replicate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/replicate/replicate-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	Method string
	Path   string
	Body   map[string]any
}

// fakeReplicate serves canned prediction documents keyed by "METHOD path".
type fakeReplicate struct {
	mu        sync.Mutex
	calls     []recordedCall
	responses map[string]fakeResponse
}

type fakeResponse struct {
	status int
	body   string
}

func (f *fakeReplicate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	call := recordedCall{Method: r.Method, Path: r.URL.Path}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&call.Body)
	}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	resp, ok := f.responses[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found"}`))
		return
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func (f *fakeReplicate) recorded() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedCall(nil), f.calls...)
}

func newTestServerAdaptor(t *testing.T, responses map[string]fakeResponse) (*Adaptor, *fakeReplicate) {
	t.Helper()
	fake := &fakeReplicate{responses: responses}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	adaptor := newAdaptor("r8_test", 5*time.Millisecond,
		replicate.WithBaseURL(server.URL),
		replicate.WithHTTPClient(server.Client()),
	)
	require.NoError(t, adaptor.initErr)
	return adaptor, fake
}

func TestSDKImageFromModelWithoutVersion(t *testing.T) {
	adaptor, fake := newTestServerAdaptor(t, map[string]fakeResponse{
		"POST /models/black-forest-labs/flux-1.1-pro/predictions": {http.StatusCreated, `{"id":"img1","status":"starting"}`},
		"GET /predictions/img1": {http.StatusOK, `{"id":"img1","status":"succeeded","output":["https://x/a.webp","https://x/b.webp"]}`},
	})

	url, err := adaptor.GenerateImage(context.Background(), "a birthday cake", "black-forest-labs/flux-1.1-pro", "16:9")
	require.NoError(t, err)
	assert.Equal(t, "https://x/a.webp", url)

	calls := fake.recorded()
	require.GreaterOrEqual(t, len(calls), 2)
	assert.Equal(t, "POST", calls[0].Method)
	input, ok := calls[0].Body["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a birthday cake", input["prompt"])
	assert.Equal(t, "16:9", input["aspect_ratio"])
	assert.Equal(t, "webp", input["output_format"])
	assert.NotContains(t, calls[0].Body, "version")
}

func TestSDKVideoFromModelWithoutVersion(t *testing.T) {
	adaptor, fake := newTestServerAdaptor(t, map[string]fakeResponse{
		"POST /models/luma/ray/predictions": {http.StatusCreated, `{"id":"vid1","status":"processing"}`},
		"GET /predictions/vid1":             {http.StatusOK, `{"id":"vid1","status":"succeeded","output":"https://x/video.mp4"}`},
	})

	url, err := adaptor.GenerateVideo(context.Background(), "balloons", "https://x/seed.png", "luma/ray")
	require.NoError(t, err)
	assert.Equal(t, "https://x/video.mp4", url)

	input, ok := fake.recorded()[0].Body["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://x/seed.png", input["start_image_url"])
	assert.Equal(t, false, input["loop"])
}

func TestSDKPinnedVersion(t *testing.T) {
	adaptor, fake := newTestServerAdaptor(t, map[string]fakeResponse{
		"POST /predictions": {http.StatusCreated, `{"id":"v1","status":"succeeded","output":"https://x/v.webp"}`},
	})

	url, err := adaptor.GenerateImage(context.Background(), "cake", "owner/model:abc123", "1:1")
	require.NoError(t, err)
	assert.Equal(t, "https://x/v.webp", url)

	calls := fake.recorded()
	require.Len(t, calls, 1, "terminal prediction is not polled")
	assert.Equal(t, "abc123", calls[0].Body["version"])
}

func TestSDKFailedPredictionKeepsModelError(t *testing.T) {
	adaptor, _ := newTestServerAdaptor(t, map[string]fakeResponse{
		"POST /models/owner/model/predictions": {http.StatusCreated, `{"id":"bad","status":"starting"}`},
		"GET /predictions/bad":                 {http.StatusOK, `{"id":"bad","status":"failed","error":"NSFW content detected"}`},
	})

	_, err := adaptor.GenerateImage(context.Background(), "cake", "owner/model", "16:9")
	require.Error(t, err)
	assert.Equal(t, "NSFW content detected", err.Error())

	var predErr *PredictionError
	require.ErrorAs(t, err, &predErr)
	assert.Equal(t, replicate.Failed, predErr.Status)
	assert.Equal(t, "bad", predErr.ID)
}

func TestSDKCanceledPrediction(t *testing.T) {
	adaptor, _ := newTestServerAdaptor(t, map[string]fakeResponse{
		"POST /models/owner/model/predictions": {http.StatusCreated, `{"id":"c1","status":"canceled"}`},
	})

	_, err := adaptor.GenerateVideo(context.Background(), "cake", "", "owner/model")
	require.Error(t, err)
	assert.Equal(t, "prediction canceled", err.Error())
	assert.NotErrorIs(t, err, ErrEmptyOutput)
}

func TestSDKAPIErrorText(t *testing.T) {
	adaptor, _ := newTestServerAdaptor(t, map[string]fakeResponse{
		"POST /models/owner/model/predictions": {http.StatusUnprocessableEntity, `{"title":"Input validation failed","detail":"prompt is required"}`},
	})

	_, err := adaptor.GenerateImage(context.Background(), "cake", "owner/model", "16:9")
	require.Error(t, err)
	assert.Equal(t, "Input validation failed: prompt is required", err.Error())
}

func TestSDKInvalidIdentifier(t *testing.T) {
	adaptor, fake := newTestServerAdaptor(t, nil)

	_, err := adaptor.GenerateImage(context.Background(), "cake", "not-a-model", "16:9")
	assert.ErrorIs(t, err, replicate.ErrInvalidIdentifier)
	assert.Empty(t, fake.recorded())
}

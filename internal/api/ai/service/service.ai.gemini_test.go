// Package aisvc - Test state machine của Gemini client với doer và sleep giả.
package aisvc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDoer trả về lần lượt các response đã kịch bản sẵn
type scriptedDoer struct {
	responses []*http.Response
	requests  []*http.Request
}

func (d *scriptedDoer) Do(req *http.Request) (*http.Response, error) {
	d.requests = append(d.requests, req)
	if len(d.responses) == 0 {
		return nil, fmt.Errorf("scriptedDoer hết response")
	}
	resp := d.responses[0]
	d.responses = d.responses[1:]
	return resp, nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func successBody(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func apiErrorBody(code int, message string) string {
	return fmt.Sprintf(`{"error":{"code":%d,"message":%q}}`, code, message)
}

// newTestClient dựng client với doer kịch bản và sleep ghi lại thay vì chờ thật
func newTestClient(doer *scriptedDoer, sleeps *[]time.Duration, models ...string) *GeminiClient {
	return &GeminiClient{
		apiKey:   "test-key",
		baseURL:  "https://gemini.test",
		models:   models,
		attempts: 3,
		backoff:  2 * time.Second,
		timeout:  30 * time.Second,
		doer:     doer,
		sleep: func(d time.Duration) {
			*sleeps = append(*sleeps, d)
		},
	}
}

func TestGeminiAnalyze_SuccessFirstTry(t *testing.T) {
	var sleeps []time.Duration
	doer := &scriptedDoer{responses: []*http.Response{
		jsonResponse(200, successBody(`{"bugType":"X"}`)),
	}}
	client := newTestClient(doer, &sleeps, "gemini-2.5-flash")

	text, model, err := client.Analyze(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"bugType":"X"}`, text)
	assert.Equal(t, "gemini-2.5-flash", model)
	assert.Empty(t, sleeps)
}

func TestGeminiAnalyze_404SkipsToNextModel(t *testing.T) {
	var sleeps []time.Duration
	doer := &scriptedDoer{responses: []*http.Response{
		jsonResponse(404, apiErrorBody(404, "model not found")),
		jsonResponse(200, successBody("ok")),
	}}
	client := newTestClient(doer, &sleeps, "gemini-2.5-flash", "gemini-2.0-flash")

	text, model, err := client.Analyze(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, "gemini-2.0-flash", model)
	// 404 chuyển model ngay, không chờ
	assert.Empty(t, sleeps)
	require.Len(t, doer.requests, 2)
	assert.Contains(t, doer.requests[0].URL.Path, "gemini-2.5-flash")
	assert.Contains(t, doer.requests[1].URL.Path, "gemini-2.0-flash")
}

func TestGeminiAnalyze_RateLimitBackoff(t *testing.T) {
	var sleeps []time.Duration
	doer := &scriptedDoer{responses: []*http.Response{
		jsonResponse(429, apiErrorBody(429, "rate limited")),
		jsonResponse(503, apiErrorBody(503, "overloaded")),
		jsonResponse(200, successBody("ok")),
	}}
	client := newTestClient(doer, &sleeps, "gemini-2.5-flash")

	text, _, err := client.Analyze(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	// Backoff tuyến tính theo attempt: 2s rồi 4s
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, sleeps)
}

func TestGeminiAnalyze_OtherErrorWaitsOneSecond(t *testing.T) {
	var sleeps []time.Duration
	doer := &scriptedDoer{responses: []*http.Response{
		jsonResponse(500, apiErrorBody(500, "boom")),
		jsonResponse(200, successBody("ok")),
	}}
	client := newTestClient(doer, &sleeps, "gemini-2.5-flash")

	_, _, err := client.Analyze(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{time.Second}, sleeps)
}

func TestGeminiAnalyze_EmptyCandidatesRetries(t *testing.T) {
	var sleeps []time.Duration
	doer := &scriptedDoer{responses: []*http.Response{
		jsonResponse(200, `{"candidates":[]}`),
		jsonResponse(200, successBody("ok")),
	}}
	client := newTestClient(doer, &sleeps, "gemini-2.5-flash")

	text, _, err := client.Analyze(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, []time.Duration{time.Second}, sleeps)
}

func TestGeminiAnalyze_ExhaustionCarriesLastMessage(t *testing.T) {
	var sleeps []time.Duration
	// 2 model x 3 attempt, tất cả fail; lỗi cuối cùng là "final failure"
	responses := make([]*http.Response, 0, 6)
	for i := 0; i < 5; i++ {
		responses = append(responses, jsonResponse(500, apiErrorBody(500, "mid failure")))
	}
	responses = append(responses, jsonResponse(500, apiErrorBody(500, "final failure")))
	doer := &scriptedDoer{responses: responses}
	client := newTestClient(doer, &sleeps, "gemini-2.5-flash", "gemini-2.0-flash")

	_, _, err := client.Analyze(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "final failure")
	require.Len(t, doer.requests, 6)
}

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := BuildAnalysisPrompt("const x = 1", "shopcart/src/app.ts", map[string]interface{}{"label": "bug"})

	assert.Contains(t, prompt, "const x = 1")
	assert.Contains(t, prompt, "shopcart/src/app.ts")
	assert.Contains(t, prompt, `"label": "bug"`)
	assert.Contains(t, prompt, "single, minified JSON object")
}

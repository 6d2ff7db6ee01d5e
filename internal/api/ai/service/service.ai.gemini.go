package aisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ChiragDawra/BrainBug/config"
	"github.com/ChiragDawra/BrainBug/internal/common"
	"github.com/ChiragDawra/BrainBug/internal/logger"
)

// httpDoer cho phép inject client giả trong test
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Kết quả của một lần gọi thử một model
type callOutcome int

const (
	outcomeSuccess callOutcome = iota
	// Thử lại cùng model sau khi chờ
	outcomeRetryable
	// Bỏ model này, chuyển sang model kế tiếp ngay
	outcomeFatal
)

// geminiAttempt gom kết quả một lần thử: text khi thành công,
// thời gian chờ khi retry được, và message lỗi để báo lên khi cạn lựa chọn.
type geminiAttempt struct {
	outcome callOutcome
	text    string
	wait    time.Duration
	message string
}

// GeminiClient gọi Gemini generateContent với fallback qua nhiều model
// và retry có backoff trong từng model.
type GeminiClient struct {
	apiKey   string
	baseURL  string
	models   []string
	attempts int
	backoff  time.Duration
	timeout  time.Duration

	doer  httpDoer
	sleep func(time.Duration)
}

// NewGeminiClient tạo mới GeminiClient từ config
func NewGeminiClient(cfg *config.Configuration) *GeminiClient {
	timeout := time.Duration(cfg.AI_TimeoutSeconds) * time.Second
	return &GeminiClient{
		apiKey:   cfg.Gemini_APIKey,
		baseURL:  cfg.Gemini_BaseURL,
		models:   cfg.GeminiModelList(),
		attempts: cfg.Gemini_Attempts,
		backoff:  time.Duration(cfg.Gemini_BackoffMs) * time.Millisecond,
		timeout:  timeout,
		doer:     &http.Client{Timeout: timeout},
		sleep:    time.Sleep,
	}
}

// BuildAnalysisPrompt dựng prompt ép Gemini trả về đúng một JSON object
// theo schema phân tích bug.
func BuildAnalysisPrompt(code, filePath string, mlOutput interface{}) string {
	mlJSON, err := json.MarshalIndent(mlOutput, "", "  ")
	if err != nil {
		mlJSON = []byte(fmt.Sprintf("%v", mlOutput))
	}

	return fmt.Sprintf(`
You are BrainBug, an expert code analysis AI. Analyze the provided code snippet and metadata.
Your response MUST be a single, minified JSON object. Do not include markdown (`+"```json ... ```"+`) or any other text outside the JSON object.

Code:
%s

File Path:
%s

ML Model Output (Hint):
%s

Based on all this information, return a JSON object with the following schema:
{
  "projectName": "string",
  "language": "string",
  "bugType": "string",
  "rootCause": "string",
  "recommendation": "string",
  "suggestedFix": "string"
}
`, code, filePath, string(mlJSON))
}

// Analyze chạy prompt qua danh sách model theo thứ tự ưu tiên.
// Mỗi model được thử tối đa attempts lần; 404 nhảy sang model kế tiếp ngay,
// 429/503 chờ attempt*backoff rồi thử lại, lỗi khác chờ 1s.
// Trả về (raw text, model đã dùng). Cạn hết model và attempt thì trả về
// error mang message của lỗi cuối cùng.
func (c *GeminiClient) Analyze(ctx context.Context, prompt string) (string, string, error) {
	log := logger.WithModule("ai")
	lastMessage := "no models configured"

	for _, model := range c.models {
		for attempt := 1; attempt <= c.attempts; attempt++ {
			result := c.tryModel(ctx, model, prompt, attempt)

			switch result.outcome {
			case outcomeSuccess:
				log.WithFields(map[string]interface{}{
					"model":   model,
					"attempt": attempt,
				}).Info("Gemini phân tích thành công")
				return result.text, model, nil

			case outcomeFatal:
				lastMessage = result.message
				log.WithFields(map[string]interface{}{
					"model": model,
					"error": result.message,
				}).Warn("Model không khả dụng, chuyển model kế tiếp")

			case outcomeRetryable:
				lastMessage = result.message
				log.WithFields(map[string]interface{}{
					"model":   model,
					"attempt": attempt,
					"error":   result.message,
				}).Warn("Gọi Gemini thất bại")
				if attempt < c.attempts {
					c.sleep(result.wait)
				}
			}

			if result.outcome == outcomeFatal {
				break
			}
		}
	}

	return "", "", common.NewUpstreamAIError(lastMessage)
}

// tryModel gọi generateContent một lần và phân loại kết quả
func (c *GeminiClient) tryModel(ctx context.Context, model, prompt string, attempt int) geminiAttempt {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, model, url.QueryEscape(c.apiKey))

	body, err := json.Marshal(map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	})
	if err != nil {
		return geminiAttempt{outcome: outcomeRetryable, wait: time.Second, message: err.Error()}
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return geminiAttempt{outcome: outcomeRetryable, wait: time.Second, message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return geminiAttempt{outcome: outcomeRetryable, wait: time.Second, message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return geminiAttempt{outcome: outcomeRetryable, wait: time.Second, message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		message := extractAPIError(raw, resp.StatusCode)
		switch resp.StatusCode {
		case http.StatusNotFound:
			return geminiAttempt{outcome: outcomeFatal, message: message}
		case http.StatusTooManyRequests, http.StatusServiceUnavailable:
			// Backoff tuyến tính theo attempt: 2s, 4s, 6s với backoff mặc định
			return geminiAttempt{outcome: outcomeRetryable, wait: time.Duration(attempt) * c.backoff, message: message}
		default:
			return geminiAttempt{outcome: outcomeRetryable, wait: time.Second, message: message}
		}
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return geminiAttempt{outcome: outcomeRetryable, wait: time.Second, message: err.Error()}
	}

	if len(parsed.Candidates) == 0 ||
		len(parsed.Candidates[0].Content.Parts) == 0 ||
		parsed.Candidates[0].Content.Parts[0].Text == "" {
		return geminiAttempt{
			outcome: outcomeRetryable,
			wait:    time.Second,
			message: "No analysis text returned from Gemini.",
		}
	}

	return geminiAttempt{outcome: outcomeSuccess, text: parsed.Candidates[0].Content.Parts[0].Text}
}

// extractAPIError lấy message từ body lỗi dạng {"error":{"code","message"}}
func extractAPIError(raw []byte, status int) string {
	var apiErr struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return fmt.Sprintf("HTTP %d from Gemini API", status)
}

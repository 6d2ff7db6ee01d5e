package aisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ChiragDawra/BrainBug/config"
	"github.com/ChiragDawra/BrainBug/internal/logger"
)

// MLClient gọi HuggingFace inference endpoint để phân loại bug sơ bộ.
// Client này soft-fail: mọi lỗi (thiếu token, network, non-2xx) đều trả về
// một payload mô tả lỗi thay vì error — pipeline phân tích không bao giờ
// dừng vì ML classifier chết.
type MLClient struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewMLClient tạo mới MLClient từ config
func NewMLClient(cfg *config.Configuration) *MLClient {
	return &MLClient{
		endpoint: cfg.HuggingFace_Endpoint,
		token:    cfg.HuggingFace_Token,
		client: &http.Client{
			Timeout: time.Duration(cfg.AI_TimeoutSeconds) * time.Second,
		},
	}
}

// Classify gửi code lên endpoint ML và trả về output model (JSON đã decode).
// Không bao giờ trả về error: thất bại thành payload {"error": ..., "details": ...}.
func (c *MLClient) Classify(ctx context.Context, code string) interface{} {
	log := logger.WithModule("ai")

	if c.token == "" {
		log.Warn("HF_TOKEN missing, bỏ qua ML classifier")
		return map[string]interface{}{"error": "HF_TOKEN missing"}
	}

	body, err := json.Marshal(map[string]string{"inputs": code})
	if err != nil {
		return map[string]interface{}{
			"error":   "Failed to get analysis from ML model",
			"details": err.Error(),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return map[string]interface{}{
			"error":   "Failed to get analysis from ML model",
			"details": err.Error(),
		}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).Warn("Gọi ML classifier thất bại")
		return map[string]interface{}{
			"error":   "Failed to get analysis from ML model",
			"details": err.Error(),
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return map[string]interface{}{
			"error":   "Failed to get analysis from ML model",
			"details": err.Error(),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithFields(map[string]interface{}{
			"status": resp.StatusCode,
		}).Warn("ML classifier trả về lỗi HTTP")
		return map[string]interface{}{
			"error":   "Failed to get analysis from ML model",
			"status":  resp.StatusCode,
			"details": string(raw),
		}
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Endpoint đôi khi trả plain text, giữ nguyên
		return string(raw)
	}
	return decoded
}

// File: internal/mlclient/client.go
package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PredictResult 外部 ML 服務的風險預測結果
type PredictResult struct {
	RiskPercent float64 `json:"risk_percent"`
	Category    string  `json:"category"`
}

// TrainResult 模型訓練結果
type TrainResult struct {
	Message  string  `json:"message"`
	Accuracy float64 `json:"accuracy"`
}

// Status 模型目前狀態
type Status struct {
	Accuracy    float64 `json:"accuracy"`
	LastTrained *string `json:"last_trained"`
}

// Client 呼叫外部 ML 風險預測服務 (POST /ml/predict, POST /ml/train, GET /ml/status)
type Client struct {
	baseURL string
	http    *http.Client
}

// New 建立 ML 服務客戶端，baseURL 例如 http://localhost:8000
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Predict 查詢指定學生的輟學風險
func (c *Client) Predict(ctx context.Context, studentID int) (*PredictResult, error) {
	body, err := json.Marshal(map[string]int{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	var out PredictResult
	if err := c.do(ctx, http.MethodPost, "/ml/predict", bytes.NewReader(body), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Train 觸發模型重新訓練，訓練期間此呼叫會阻塞
func (c *Client) Train(ctx context.Context) (*TrainResult, error) {
	var out TrainResult
	if err := c.do(ctx, http.MethodPost, "/ml/train", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStatus 取得模型準確率與最後訓練時間
func (c *Client) GetStatus(ctx context.Context) (*Status, error) {
	var out Status
	if err := c.do(ctx, http.MethodGet, "/ml/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body *bytes.Reader, out any) error {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ml service returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

package modelserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"careerpath/pkg/prediction"
)

// Client talks to the model-serving sidecar that hosts the pre-trained
// career classifier. The service treats it as a black box: encoded skill
// vector in, role label plus confidence out.
type Client struct {
	BaseURL string
	APIKey  string
	httpDo  *http.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8501"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		httpDo:  &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Features []int `json:"features"`
}

type predictResponse struct {
	Role       string  `json:"role"`
	Confidence float32 `json:"confidence"`
}

type featuresResponse struct {
	Features []string `json:"features"`
}

// Predict sends the encoded vector and returns the classifier's verdict.
func (c *Client) Predict(ctx context.Context, levels []int) (prediction.RolePrediction, error) {
	if len(levels) == 0 {
		return prediction.RolePrediction{}, errors.New("empty feature vector")
	}
	data, err := json.Marshal(predictRequest{Features: levels})
	if err != nil {
		return prediction.RolePrediction{}, err
	}

	endpoint := fmt.Sprintf("%s/predict", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return prediction.RolePrediction{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return prediction.RolePrediction{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return prediction.RolePrediction{}, fmt.Errorf("model server http %d: %v", resp.StatusCode, errMap)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return prediction.RolePrediction{}, err
	}
	if out.Role == "" {
		return prediction.RolePrediction{}, errors.New("model server returned no role")
	}
	return prediction.RolePrediction{Role: out.Role, Confidence: out.Confidence}, nil
}

// Features fetches the model's trained feature list, in order.
func (c *Client) Features(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/features", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("model server http %d", resp.StatusCode)
	}

	var out featuresResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Features, nil
}

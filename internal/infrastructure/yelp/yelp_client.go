package yelp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"TripDine-App/internal/domain/model"
)

const defaultBaseURL = "https://api.yelp.com/v3"

// ErrMissingAPIKey APIキーが設定されていない
var ErrMissingAPIKey = errors.New("yelp api key is not configured")

// UpstreamError Yelp APIが200以外を返した
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("yelp api returned status %d", e.StatusCode)
}

// Client Yelp Fusion API の Business Search を呼び出すクライアント
// APIキーはサーバー側だけで保持する
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient 新しいクライアントを生成する
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchRaw Business Search を呼び出してレスポンスボディをそのまま返す
func (c *Client) SearchRaw(ctx context.Context, params model.RestaurantSearchParams) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	// 1. APIリクエストURLを構築
	reqURL := c.buildURL(params)

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスの読み取りに失敗: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}

// Search Business Search を呼び出してドメインモデルに変換する
func (c *Client) Search(ctx context.Context, params model.RestaurantSearchParams) ([]model.Restaurant, error) {
	body, err := c.SearchRaw(ctx, params)
	if err != nil {
		return nil, err
	}

	var apiResp model.RestaurantSearchResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	return apiResp.Businesses, nil
}

func (c *Client) buildURL(params model.RestaurantSearchParams) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(params.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(params.Longitude, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(params.Radius))
	q.Set("limit", strconv.Itoa(params.Limit))
	q.Set("categories", params.Categories)
	q.Set("sort_by", params.SortBy)

	return fmt.Sprintf("%s/businesses/search?%s", c.baseURL, q.Encode())
}

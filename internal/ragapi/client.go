// Package ragapi is a client for the RAG backend's chunk endpoints.
package ragapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/ragview/internal/metadata"
)

// ErrNotFound is returned when the backend has no such chunk.
var ErrNotFound = errors.New("not found")

// ClientError is a 4xx response other than 404.
type ClientError struct {
	Status int
	Detail string
}

func (e *ClientError) Error() string { return e.Detail }

// ServerError is a 5xx response.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string { return e.Detail }

// Client communicates with the RAG backend HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ChunkContents is the response from GET /data_sources/{id}/chunks/{chunkID}.
type ChunkContents struct {
	Text     string                 `json:"text"`
	Metadata metadata.ChunkMetadata `json:"metadata"`
}

// GetChunkContents fetches one chunk's text and metadata.
func (c *Client) GetChunkContents(ctx context.Context, dataSourceID int64, chunkID string) (*ChunkContents, error) {
	u := c.baseURL + "/data_sources/" + strconv.FormatInt(dataSourceID, 10) + "/chunks/" + url.PathEscape(chunkID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get chunk contents: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("get chunk %d/%s: %w", dataSourceID, chunkID, err)
	}

	var contents ChunkContents
	if err := json.NewDecoder(resp.Body).Decode(&contents); err != nil {
		return nil, fmt.Errorf("decode chunk contents: %w", err)
	}
	return &contents, nil
}

// checkStatus maps non-2xx responses to ErrNotFound, *ClientError or
// *ServerError. The backend reports failures as {"detail": "..."}.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := string(body)
	var payload struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
		detail = payload.Detail
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	if resp.StatusCode >= 500 {
		return &ServerError{Status: resp.StatusCode, Detail: detail}
	}
	return &ClientError{Status: resp.StatusCode, Detail: detail}
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

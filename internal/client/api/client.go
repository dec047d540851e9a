package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/edutube/internal/client/models"
)

// Client is the API surface the CLI depends on.
type Client interface {
	Health(ctx context.Context) error
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
	HomeSections(ctx context.Context) (*models.HomeSections, error)
	GenerateUploadURL(ctx context.Context, req UploadURLRequest) (*models.UploadTarget, error)
	CompleteUpload(ctx context.Context, req UploadCompleteRequest) (*models.UploadedVideo, error)
	ListVideos(ctx context.Context) ([]models.UploadedVideo, error)
	DeleteVideo(ctx context.Context, id string) error
}

type UploadURLRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize,omitempty"`
}

type UploadCompleteRequest struct {
	FileKey     string `json:"fileKey"`
	FileName    string `json:"fileName"`
	FileType    string `json:"fileType"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the server at baseURL. A zero timeout
// means no per-request limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *HTTPClient) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	var out []models.SearchResult
	err := c.do(ctx, http.MethodGet, "/api/search?q="+url.QueryEscape(query), nil, &out)
	return out, err
}

func (c *HTTPClient) HomeSections(ctx context.Context) (*models.HomeSections, error) {
	var out models.HomeSections
	if err := c.do(ctx, http.MethodGet, "/api/home-sections", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GenerateUploadURL(ctx context.Context, req UploadURLRequest) (*models.UploadTarget, error) {
	var out models.UploadTarget
	if err := c.do(ctx, http.MethodPost, "/api/generate-upload-url", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CompleteUpload(ctx context.Context, req UploadCompleteRequest) (*models.UploadedVideo, error) {
	var out models.UploadedVideo
	if err := c.do(ctx, http.MethodPost, "/api/upload-complete", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListVideos(ctx context.Context) ([]models.UploadedVideo, error) {
	var out []models.UploadedVideo
	err := c.do(ctx, http.MethodGet, "/api/my-videos", nil, &out)
	return out, err
}

func (c *HTTPClient) DeleteVideo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/videos/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var m messageResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&m)
		return &Error{StatusCode: resp.StatusCode, Message: m.Message}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-profiler/internal/config"
	"pet-profiler/internal/platform/httpclient"
	"pet-profiler/internal/ports/backend"
)

var ErrNotConfigured = errors.New("backend endpoint not configured")

const (
	imageContentType = "image/jpeg"

	msgUpdateSuccessful = "Update successful"
	msgImageProcessed   = "Image processed"
)

// Config del cliente del backend de scan/chat/tips.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout   time.Duration
	Endpoints config.Endpoints
}

// Client implementa ScanBackend, ChatBackend y TipsBackend sobre httpclient.
type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
	ep           config.Endpoints
}

var (
	_ backend.ScanBackend = (*Client)(nil)
	_ backend.ChatBackend = (*Client)(nil)
	_ backend.TipsBackend = (*Client)(nil)
)

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		ep:           cfg.Endpoints,
	}, nil
}

func (c *Client) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{c.apiKeyHeader: c.apiKey}
}

func (c *Client) post(ctx context.Context, endpoint, name string, in, out any) error {
	if strings.TrimSpace(endpoint) == "" {
		return fmt.Errorf("%w: %s", ErrNotConfigured, name)
	}
	return c.http.DoJSON(ctx, http.MethodPost, endpoint, c.headers(), in, out)
}

type ownerRequest struct {
	UserID string `json:"user_id"`
	PetID  string `json:"pet_id"`
}

type presignResponse struct {
	URL *string `json:"url"`
	Key *string `json:"key"`
}

func (c *Client) presign(ctx context.Context, endpoint, name, userID, petID string) (backend.Upload, error) {
	var out presignResponse
	if err := c.post(ctx, endpoint, name, ownerRequest{UserID: userID, PetID: petID}, &out); err != nil {
		return backend.Upload{}, err
	}
	if out.URL == nil || out.Key == nil {
		return backend.Upload{}, fmt.Errorf("%w: presign response missing url or key", httpclient.ErrParse)
	}
	return backend.Upload{URL: *out.URL, Key: *out.Key}, nil
}

func (c *Client) PresignScan(ctx context.Context, userID, petID string) (backend.Upload, error) {
	return c.presign(ctx, c.ep.PresignScan, "presign_scan", userID, petID)
}

func (c *Client) PresignChat(ctx context.Context, userID, petID string) (backend.Upload, error) {
	return c.presign(ctx, c.ep.PresignChat, "presign_chat", userID, petID)
}

// UploadImage hace un único PUT a la URL prefirmada; sin reintentos.
func (c *Client) UploadImage(ctx context.Context, url string, image []byte) error {
	return c.http.PutBytes(ctx, url, imageContentType, image)
}

type imageKeyRequest struct {
	UserID   string `json:"user_id"`
	PetID    string `json:"pet_id"`
	ImageKey string `json:"image_key"`
}

func (c *Client) ProcessScan(ctx context.Context, userID, petID, imageKey string) (json.RawMessage, error) {
	var out struct {
		ScanResults json.RawMessage `json:"scan_results"`
	}
	in := imageKeyRequest{UserID: userID, PetID: petID, ImageKey: imageKey}
	if err := c.post(ctx, c.ep.ProcessScan, "process_scan", in, &out); err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(out.ScanResults)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, fmt.Errorf("%w: scan_results is not an object", httpclient.ErrParse)
	}
	return out.ScanResults, nil
}

type messageResponse struct {
	Message *string `json:"message"`
}

func expectMessage(out messageResponse, want string) error {
	if out.Message == nil {
		return fmt.Errorf("%w: missing message", httpclient.ErrParse)
	}
	if *out.Message != want {
		return fmt.Errorf("%w: unexpected message %q", httpclient.ErrParse, *out.Message)
	}
	return nil
}

func (c *Client) UpdatePetInfo(ctx context.Context, userID, petID, petJSON string) error {
	in := struct {
		UserID      string `json:"user_id"`
		PetID       string `json:"pet_id"`
		ScanResults string `json:"scan_results"`
	}{userID, petID, petJSON}

	var out messageResponse
	if err := c.post(ctx, c.ep.UpdateScan, "update_scan", in, &out); err != nil {
		return err
	}
	return expectMessage(out, msgUpdateSuccessful)
}

func (c *Client) ProcessChatImage(ctx context.Context, userID, petID, imageKey string) error {
	var out messageResponse
	in := imageKeyRequest{UserID: userID, PetID: petID, ImageKey: imageKey}
	if err := c.post(ctx, c.ep.ProcessChatImage, "process_chat_image", in, &out); err != nil {
		return err
	}
	return expectMessage(out, msgImageProcessed)
}

type responseEnvelope struct {
	Response *string `json:"response"`
}

func (c *Client) SendChatMessage(ctx context.Context, userID, petID, message string, imageKeys []string) (string, error) {
	in := struct {
		UserID    string   `json:"user_id"`
		PetID     string   `json:"pet_id"`
		Message   string   `json:"message"`
		ImageKeys []string `json:"image_keys,omitempty"`
	}{userID, petID, message, imageKeys}

	var out responseEnvelope
	if err := c.post(ctx, c.ep.ChatMessage, "chat_message", in, &out); err != nil {
		return "", err
	}
	if out.Response == nil {
		return "", fmt.Errorf("%w: missing response", httpclient.ErrParse)
	}
	return *out.Response, nil
}

func (c *Client) FetchTips(ctx context.Context, userID, petID string) ([]byte, error) {
	var out responseEnvelope
	if err := c.post(ctx, c.ep.PetTips, "pet_tips", ownerRequest{UserID: userID, PetID: petID}, &out); err != nil {
		return nil, err
	}
	if out.Response == nil {
		return nil, fmt.Errorf("%w: missing response", httpclient.ErrParse)
	}
	return []byte(*out.Response), nil
}

package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/econdash/internal/logging"
)

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient constructs an HTTPClient against baseURL. Pass an
// http.Client with a timeout; auth calls are short and should not hang the
// login form.
func NewHTTPClient(baseURL string, hc *http.Client, log logging.Logger) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), hc: hc, log: log}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	var result LoginResult
	if err := c.post(ctx, "/login/", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, username, fullName, password string) error {
	body := map[string]string{
		"email":     email,
		"username":  username,
		"full_name": fullName,
		"password":  password,
	}
	// The success body is not consumed beyond the status.
	return c.post(ctx, "/register/", body, nil)
}

func (c *HTTPClient) Logout(ctx context.Context, refreshToken string) error {
	return c.post(ctx, "/logout/", map[string]string{"refresh": refreshToken}, nil)
}

// post sends a JSON body and decodes a successful answer into out (when out
// is non-nil). Non-2xx answers are decoded into APIError with the service's
// {detail} message when present.
func (c *HTTPClient) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("auth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			apiErr.Detail = detail.Detail
		}
		c.log.Debug(ctx, "auth call rejected", "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

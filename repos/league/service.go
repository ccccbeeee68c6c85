package league

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

	"github.com/rs/zerolog/log"

	requestID "github.com/nvbf/league-desk/pkg/requestID"
)

// AdminHeader carries the acting administrator on mutating calls.
const AdminHeader = "X-Admin-Username"

// DefaultTimeout is the overall deadline applied to every call.
const DefaultTimeout = 30 * time.Second

// AdminSource yields the username of the active administrator, or "" when
// no administrator is logged in.
type AdminSource interface {
	AdminUsername() string
}

// Service is the client of the league REST API.
type Service struct {
	baseURL string
	client  *http.Client
	headers map[string]string
	admin   AdminSource
}

// NewService creates a client for the API rooted at baseURL
// (for example http://localhost:8080/api/v1).
func NewService(baseURL string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// UseAdminSource wires the session whose administrator is announced in
// the X-Admin-Username header. Call before first use.
func (s *Service) UseAdminSource(src AdminSource) {
	s.admin = src
}

// BaseURL returns the API root the client talks to.
func (s *Service) BaseURL() string {
	return s.baseURL
}

type call struct {
	method   string
	endpoint string
	query    url.Values
	body     interface{}
	out      interface{}
	asAdmin  bool
}

func (s *Service) do(ctx context.Context, c call) error {
	target := s.baseURL + c.endpoint
	if len(c.query) > 0 {
		target += "?" + c.query.Encode()
	}

	var body io.Reader
	if c.body != nil {
		payload, err := json.Marshal(c.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range s.headers {
		req.Header.Set(key, value)
	}
	reqID := requestID.FromContext(ctx)
	req.Header.Set(requestID.Header, reqID)

	if c.asAdmin && s.admin != nil {
		if username := s.admin.AdminUsername(); username != "" {
			req.Header.Set(AdminHeader, username)
		}
	}

	started := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		log.Warn().
			Err(err).
			Str("method", c.method).
			Str("path", c.endpoint).
			Str("request_id", reqID).
			Msg("league API request failed")
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug().
		Str("method", c.method).
		Str("path", c.endpoint).
		Int("status", resp.StatusCode).
		Str("request_id", reqID).
		Dur("took", time.Since(started)).
		Msg("league API call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, responseBody)
	}

	if c.out == nil || len(bytes.TrimSpace(responseBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(responseBody, c.out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(responseBody))
	}
	return nil
}

func (s *Service) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	return s.do(ctx, call{method: http.MethodGet, endpoint: endpoint, query: query, out: out})
}

func (s *Service) post(ctx context.Context, endpoint string, body, out interface{}) error {
	return s.do(ctx, call{method: http.MethodPost, endpoint: endpoint, body: body, out: out})
}

func (s *Service) put(ctx context.Context, endpoint string, body, out interface{}) error {
	return s.do(ctx, call{method: http.MethodPut, endpoint: endpoint, body: body, out: out})
}

func (s *Service) delete(ctx context.Context, endpoint string) error {
	return s.do(ctx, call{method: http.MethodDelete, endpoint: endpoint})
}

package cricapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"criclite/internal/domain"
	"criclite/internal/logging"
	"criclite/internal/provider"
)

// Config controls how the CricAPI client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Mapper     *Mapper
}

// Client fetches current matches from CricAPI and maps them to domain models.
// It never retries; pacing and recovery belong to the refresh scheduler.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
	mapper     *Mapper
}

// NewClient constructs a CricAPI client with the provided configuration.
func NewClient(cfg Config) *Client {
	mapper := cfg.Mapper
	if mapper == nil {
		mapper = NewMapper(nil, nil)
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		mapper:     mapper,
	}
}

// Name identifies the client in logs and metric attributes.
func (c *Client) Name() string { return Name }

// FetchMatches retrieves current matches and normalizes them, satisfying
// provider.MatchProvider.
func (c *Client) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	payload, err := c.FetchCurrent(ctx)
	if err != nil {
		return nil, err
	}

	matches, skipped := c.mapper.NormalizeAll(payload)
	if skipped > 0 {
		logging.Warn(c.logger, "skipped malformed match entries",
			slog.String(logging.FieldProvider, Name),
			slog.Int(logging.FieldSkipped, skipped),
		)
	}
	return matches, nil
}

// FetchCurrent issues one GET to the currentMatches endpoint and decodes the
// response, classifying failures into the provider error taxonomy.
func (c *Client) FetchCurrent(ctx context.Context) (*currentMatchesResponse, error) {
	req, err := c.buildRequest(ctx)
	if err != nil {
		return nil, &provider.MalformedResponseError{Provider: Name, Message: "build request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &provider.NetworkError{Provider: Name, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if apiErr := classifyStatusCode(resp); apiErr != nil {
		return nil, apiErr
	}

	var payload currentMatchesResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, &provider.MalformedResponseError{Provider: Name, Message: "decode response", Err: decodeErr}
	}

	if payload.Status != statusSuccess {
		return nil, classifyFailureReason(payload)
	}

	logging.Info(c.logger, "cricapi quota",
		slog.String(logging.FieldProvider, Name),
		slog.Int("hits_used", payload.Info.HitsUsed),
		slog.Int("hits_limit", payload.Info.HitsLimit),
		slog.Int("total_rows", payload.Info.TotalRows),
	)

	return &payload, nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+currentMatchesPath, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("apikey", c.apiKey)
	q.Set("offset", "0")
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func classifyStatusCode(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &provider.AuthError{Provider: Name, StatusCode: resp.StatusCode, Message: readErrorBody(resp)}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &provider.RateLimitError{
			Provider:   Name,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    readErrorBody(resp),
		}
	default:
		return &provider.NetworkError{
			Provider: Name,
			Message:  fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, readErrorBody(resp)),
		}
	}
}

// classifyFailureReason inspects the provider's failure wording on an HTTP
// 200 with status != success. A dead key and an exhausted quota both come
// back this way, so the distinction has to be made from the reason text.
func classifyFailureReason(payload currentMatchesResponse) error {
	reason := strings.ToLower(payload.Reason)
	switch {
	case strings.Contains(reason, "apikey") || strings.Contains(reason, "api key"):
		return &provider.AuthError{Provider: Name, Message: payload.Reason}
	case strings.Contains(reason, "hits") || strings.Contains(reason, "limit"):
		return &provider.RateLimitError{Provider: Name, Message: payload.Reason}
	default:
		msg := payload.Reason
		if msg == "" {
			msg = fmt.Sprintf("provider status %q", payload.Status)
		}
		return &provider.MalformedResponseError{Provider: Name, Message: msg}
	}
}

func readErrorBody(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return strings.TrimSpace(string(body))
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if until := time.Until(at); until > 0 {
			return until
		}
	}
	return 0
}

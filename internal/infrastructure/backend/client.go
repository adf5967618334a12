// Package backend is the HTTP client of the travel REST API. Each resource
// client applies the field mappers on the way out and the response extractor
// on the way back.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/config"
	"github.com/ecotravel-admin/internal/normalize"
	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/record"
)

// Client - общий HTTP клиент travel API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	timeout     time.Duration
	longTimeout time.Duration
	logger      *zap.Logger
}

// NewClient создает клиент travel API
func NewClient(cfg *config.BackendConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		timeout:     cfg.RequestTimeout,
		longTimeout: cfg.LongRequestTimeout,
		logger:      logger,
	}
}

type request struct {
	method string
	path   string
	query  url.Values
	body   interface{}
	long   bool
}

// do выполняет запрос и возвращает декодированное тело ответа.
// Пустое тело 2xx ответа даёт nil.
func (c *Client) do(ctx context.Context, r request) (any, error) {
	timeout := c.timeout
	if r.long {
		timeout = c.longTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, apperrors.ErrInternalServer.Wrap(fmt.Errorf("failed to marshal request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, apperrors.ErrInternalServer.Wrap(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Calling travel API",
		zap.String("method", r.method),
		zap.String("url", endpoint))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, r, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(ctx, r, err)
	}

	c.logger.Debug("Travel API responded",
		zap.String("method", r.method),
		zap.String("path", r.path),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var detail interface{}
		if decoded, err := record.Decode(raw); err == nil {
			if obj, ok := record.From(decoded); ok {
				detail, _ = obj.Value("detail", "message")
			}
		}
		c.logger.Warn("Travel API returned error",
			zap.String("path", r.path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", truncate(string(raw), 512)))
		return nil, apperrors.BackendError(resp.StatusCode, detail)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	decoded, err := record.Decode(raw)
	if err != nil {
		c.logger.Error("Failed to decode response",
			zap.String("path", r.path),
			zap.Error(err))
		return nil, apperrors.ErrUnexpectedResponse.Wrap(fmt.Errorf("failed to decode response: %w", err))
	}
	return decoded, nil
}

func (c *Client) transportError(ctx context.Context, r request, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		c.logger.Warn("Travel API request timed out", zap.String("path", r.path), zap.Error(err))
		return apperrors.ErrBackendTimeout.Wrap(err)
	case errors.Is(ctx.Err(), context.Canceled):
		// вызывающий отменил операцию, это не сбой travel API
		return fmt.Errorf("travel API request canceled: %w", ctx.Err())
	default:
		c.logger.Error("Failed to execute request", zap.String("path", r.path), zap.Error(err))
		return apperrors.ErrBackendUnavailable.Wrap(err)
	}
}

// object приводит тело ответа к объекту, иначе UNEXPECTED_RESPONSE
func object(body any, keys ...string) (record.Record, error) {
	if _, ok := record.From(body); !ok {
		return nil, apperrors.ErrUnexpectedResponse.WithDetails(map[string]interface{}{
			"reason": "expected a JSON object",
		})
	}
	return normalize.ExtractObject(body, keys...), nil
}

// result возвращает объект ответа мутации; пустой или не-объектный ответ даёт пустую запись
func result(body any) record.Record {
	if obj, ok := record.From(body); ok {
		return obj
	}
	return record.Record{}
}

func segment(s string) string {
	return url.PathEscape(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

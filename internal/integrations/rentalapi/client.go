package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// Client клиент внешнего API проката.
// Повторных попыток нет: ошибка возвращается вызывающему как есть.
type Client struct {
	baseURL    string
	httpClient *http.Client
	group      singleflight.Group
	metrics    MetricsCollector
	log        Logger
}

// NewClient создает новый экземпляр клиента. metrics может быть nil
func NewClient(baseURL string, timeout time.Duration, metrics MetricsCollector, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// get выполняет GET запрос. Одновременные одинаковые запросы разделяют один вызов API,
// каждый вызывающий декодирует ответ в свою структуру
func (c *Client) get(ctx context.Context, endpoint, path string, out interface{}) error {
	ch := c.group.DoChan(path, func() (interface{}, error) {
		// Общий запрос не должен отменяться вместе с первым вызывающим
		return c.do(context.WithoutCancel(ctx), endpoint, http.MethodGet, path, nil)
	})

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return decode(res.Val.([]byte), endpoint, out)
	}
}

// send выполняет запрос с JSON телом и декодирует ответ в out (если out не nil)
func (c *Client) send(ctx context.Context, endpoint, method, path string, body, out interface{}) error {
	raw, err := c.do(ctx, endpoint, method, path, body)
	if err != nil {
		return err
	}
	return decode(raw, endpoint, out)
}

func (c *Client) do(ctx context.Context, endpoint, method, path string, body interface{}) (raw []byte, err error) {
	start := time.Now()
	defer func() {
		outcome := outcomeOK
		if err != nil {
			outcome = outcomeError
		}
		if c.metrics != nil {
			c.metrics.ObserveUpstream(endpoint, outcome, time.Since(start))
		}
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: failed to encode body: %v", ErrInternal, endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to create request: %v", ErrInternal, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("RentalAPI: %s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to read body: %v", ErrUnavailable, endpoint, err)
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s: %s", ErrBadRequest, endpoint, errorMessage(raw))
	case resp.StatusCode >= 500:
		c.log.Warn("RentalAPI: %s %s returned %d", method, path, resp.StatusCode)
		return nil, fmt.Errorf("%w: %s: status %d", ErrUnavailable, endpoint, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: %s: unexpected status code %d: %s", ErrInvalidResponse, endpoint, resp.StatusCode, errorMessage(raw))
	}
}

func decode(raw []byte, endpoint string, out interface{}) error {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, endpoint, err)
	}
	return nil
}

// errorMessage достает поле message из тела ошибки, иначе возвращает тело целиком
func errorMessage(raw []byte) string {
	var e errorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(raw))
}

// IsClientError сообщает, что ошибка вызвана данными запроса, а не недоступностью API
func IsClientError(err error) bool {
	return errors.Is(err, ErrBadRequest) || errors.Is(err, ErrNotFound)
}

package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blogfront/internal/apperr"
	"blogfront/internal/logger"
	"blogfront/internal/reqctx"

	"go.uber.org/zap"
)

// Client — HTTP-клиент к API блога. Единственное место, где bearer-токен
// сессии попадает в заголовок Authorization.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithHTTP — для тестов и нестандартных транспортов.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: hc}
}

// do выполняет запрос с контекстом вызывающего: уход пользователя со
// страницы отменяет запрос к API. body и out могут быть nil.
func (c *Client) do(ctx context.Context, op, method, path string, body any, out any) error {
	log := logger.WithCtx(ctx)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := reqctx.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if apperr.Canceled(err) {
			log.Debug("api: запрос отменён", zap.String("op", op))
		} else {
			log.Warn("api: сервер недоступен", zap.String("op", op), zap.Error(err))
		}
		return apperr.Network(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.Network(op, fmt.Errorf("read response: %w", err))
	}

	log.Debug("api: ответ",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessage(respBody)
		log.Warn("api: запрос отклонён",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return apperr.Rejected(op, resp.StatusCode, msg)
	}

	if out != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s: unmarshal response: %w", op, err)
		}
	}

	return nil
}

// errorMessage достаёт текст ошибки из {"message": ...} или {"error": ...};
// не-JSON тело отдаётся как есть, обрезанным.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return payload.Error
	}
	msg := strings.TrimSpace(string(body))
	if strings.HasPrefix(msg, "<") {
		return ""
	}
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

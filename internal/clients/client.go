// Package clients содержит REST-клиенты нижележащих сервисов:
// сервиса данных (пользователи, навыки, вакансии) и сервиса анализа.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/lib/sl"
)

// MsgInvalidURI сообщение об ошибке построения адреса нижележащего сервиса.
const MsgInvalidURI = "internal error - invalid URI"

// максимальный размер тела ошибки, сохраняемого в StatusError
const maxErrorBody = 4 << 10

// errEmptyBody сервис ответил успешно, но без тела.
var errEmptyBody = errors.New("empty response body")

// Client общий HTTP-клиент с JSON-телами.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New создаёт клиента для сервиса по адресу baseURL.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err == nil && (u.Scheme == "" || u.Host == "") {
		err = fmt.Errorf("base url %q has no scheme or host", c.baseURL)
	}
	if err != nil {
		return "", apperr.Internal(MsgInvalidURI, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// do выполняет запрос. in кодируется в тело, если не nil; ответ декодируется в out,
// если out не nil. Неуспешный статус возвращается как *apperr.StatusError.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	log := c.log.With(sl.Op(op), slog.String("method", method), slog.String("path", path))

	target, err := c.endpoint(path, query)
	if err != nil {
		log.Error("failed to build request URI", sl.Err(err))
		return err
	}

	var body io.Reader
	if in != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(in); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		body = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("downstream request failed", sl.Err(err))
		return fmt.Errorf("%s: %w: %w", op, apperr.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Warn("downstream responded with error", slog.Int("status", resp.StatusCode))
		return fmt.Errorf("%s: %w", op, &apperr.StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		})
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: %w", op, errEmptyBody)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Package gateway provides typed access to the remote resource store. The
// store is a plain collection-per-path JSON API with no cross-resource
// transactions; every method here is a single request/response call.
package gateway

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

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
	appvalidator "github.com/Huseelk/cinema-booking-app/internal/validator"
)

type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
	logger   *slog.Logger
}

func New(baseURL string, timeout time.Duration, validate *validator.Validate, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		validate: validate,
		logger:   logger,
	}
}

// storeError is the error envelope the resource store may return alongside a
// non-2xx status.
type storeError struct {
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return c.wrapTransportError(err)
	}

	return c.do(req, dst)
}

func (c *Client) send(ctx context.Context, method, path string, body any, dst any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return c.wrapTransportError(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return c.wrapTransportError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dst)
}

func (c *Client) remove(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return c.wrapTransportError(err)
	}

	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return c.wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrRecordNotFound
	}

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		message := fmt.Sprintf("the resource store rejected the request (status %d)", resp.StatusCode)

		var se storeError
		if err := json.Unmarshal(body, &se); err == nil && se.Message != "" {
			message = se.Message
		}

		cause := fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(body))
		c.logger.Warn("resource store call failed", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)

		return &domain.GatewayError{Message: message, Cause: cause}
	}

	if dst == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &domain.GatewayError{
			Message: "the resource store returned an unreadable response",
			Cause:   fmt.Errorf("%s %s: decode: %w", req.Method, req.URL.Path, err),
		}
	}

	return nil
}

func (c *Client) wrapTransportError(err error) error {
	c.logger.Warn("resource store unreachable", "error", err)

	return &domain.GatewayError{
		Message: "the resource store could not be reached",
		Cause:   err,
	}
}

// validatePayload runs struct validation on an outgoing payload and converts
// the first violation into an InvalidInputError. Validation failures never
// reach the wire.
func (c *Client) validatePayload(payload any, resource string) error {
	err := c.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]

		return domain.NewInvalidInputError(
			fmt.Sprintf("invalid %s data: %s %s", resource, strings.ToLower(fe.Field()), appvalidator.ValidationMessage(fe)),
		)
	}

	return domain.NewInvalidInputError(fmt.Sprintf("invalid %s data provided", resource))
}

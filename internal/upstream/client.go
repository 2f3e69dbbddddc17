package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/payment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/httperr"
)

const maxBody = 8 << 20

// Client talks to the BarberSmart REST API. Responses are either a bare JSON
// array or an envelope {"success": bool, "message": string, "<key>": [...]}.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        20,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

func (c *Client) ListAppointments(ctx context.Context) ([]appointment.Record, error) {
	var out []appointment.Record
	err := c.get(ctx, "appointments", "/api/admin/appointments", "appointments", &out)
	return out, err
}

func (c *Client) ListUserAppointments(ctx context.Context, userID string) ([]appointment.Record, error) {
	var out []appointment.Record
	path := "/api/appointments/user/" + url.PathEscape(userID)
	err := c.get(ctx, "user_appointments", path, "appointments", &out)
	return out, err
}

func (c *Client) ListPayments(ctx context.Context) ([]payment.Record, error) {
	var out []payment.Record
	err := c.get(ctx, "payments", "/api/admin/payments-history", "payments", &out)
	return out, err
}

func (c *Client) ListBarbers(ctx context.Context) ([]appointment.Barber, error) {
	var out []appointment.Barber
	err := c.get(ctx, "barbers", "/api/admin/barbers", "barbers", &out)
	return out, err
}

func (c *Client) get(ctx context.Context, resource, path, key string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return &httperr.UpstreamError{Resource: resource, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &httperr.UpstreamError{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return &httperr.UpstreamError{Resource: resource, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &httperr.UpstreamError{
			Resource: resource,
			Status:   resp.StatusCode,
			Message:  envelopeMessage(body),
		}
	}

	if err := decodeList(body, key, dst); err != nil {
		return &httperr.UpstreamError{Resource: resource, Status: resp.StatusCode, Err: err}
	}
	return nil
}

var errUnsuccessful = errors.New("request reported success=false")

func decodeList(body []byte, key string, dst any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}

	if body[0] == '[' {
		return json.Unmarshal(body, dst)
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}

	if raw, ok := env["success"]; ok {
		var success bool
		if err := json.Unmarshal(raw, &success); err == nil && !success {
			if msg := envelopeMessage(body); msg != "" {
				return fmt.Errorf("%w: %s", errUnsuccessful, msg)
			}
			return errUnsuccessful
		}
	}

	raw, ok := env[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func envelopeMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}

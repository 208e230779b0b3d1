// Package otp talks to the external phone-verification service. The service
// owns code generation, delivery and expiry; this client only carries the
// challenge round trips.
package otp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Amit562877/fund-collector/internal/usecase/identity"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logrus.Entry
}

func NewClient(baseURL, apiKey string, log *logrus.Entry) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

type widget struct{ id string }

func (w *widget) ID() string { return w.id }

type challenge struct {
	c  *Client
	id string
}

// NewWidget registers a verification widget with the provider; the handle
// is reused for every challenge in the same session.
func (c *Client) NewWidget(ctx context.Context) (identity.Widget, error) {
	var out struct {
		WidgetID string `json:"widget_id"`
	}
	if err := c.post(ctx, "/v1/widgets", map[string]any{}, &out); err != nil {
		return nil, err
	}
	return &widget{id: out.WidgetID}, nil
}

func (c *Client) RequestChallenge(ctx context.Context, w identity.Widget, phoneE164 string) (identity.Challenge, error) {
	var out struct {
		VerificationID string `json:"verification_id"`
	}
	in := map[string]any{"widget_id": w.ID(), "phone": phoneE164}
	if err := c.post(ctx, "/v1/verifications", in, &out); err != nil {
		return nil, err
	}
	return &challenge{c: c, id: out.VerificationID}, nil
}

func (ch *challenge) Confirm(ctx context.Context, code string) error {
	path := fmt.Sprintf("/v1/verifications/%s/check", ch.id)
	return ch.c.post(ctx, path, map[string]any{"code": code}, nil)
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		// surface the provider's message text verbatim where it gives one
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			return fmt.Errorf("%s", e.Message)
		}
		c.log.WithField("status", resp.StatusCode).Warn("otp provider error without message")
		return fmt.Errorf("otp provider returned %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

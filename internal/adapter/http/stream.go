package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Amit562877/fund-collector/internal/infrastructure/feed"
	"github.com/Amit562877/fund-collector/internal/usecase/fund"
	"github.com/Amit562877/fund-collector/internal/usecase/user"
)

// Subscriber is the read side of the change feed.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) <-chan struct{}
}

// StreamHandler serves the live collection views over SSE. Each connection
// gets the full newest-first list immediately and again after every change;
// the feed subscription is scoped to the request context, so closing the
// view releases the listener.
type StreamHandler struct {
	sub   Subscriber
	users *user.Usecase
	funds *fund.Usecase
}

func NewStreamHandler(sub Subscriber, users *user.Usecase, funds *fund.Usecase) *StreamHandler {
	return &StreamHandler{sub: sub, users: users, funds: funds}
}

func (h *StreamHandler) StreamUsers(c echo.Context) error {
	return h.stream(c, feed.TopicUsers, func(ctx context.Context) (any, error) {
		return h.users.ListAll(ctx)
	})
}

func (h *StreamHandler) StreamFunds(c echo.Context) error {
	return h.stream(c, feed.TopicFunds, func(ctx context.Context) (any, error) {
		return h.funds.List(ctx)
	})
}

func (h *StreamHandler) stream(c echo.Context, topic string, load func(context.Context) (any, error)) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	send := func() error {
		v, err := load(ctx)
		if err != nil {
			return err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", b); err != nil {
			return err
		}
		w.Flush()
		return nil
	}

	if err := send(); err != nil {
		return err
	}

	ticks := h.sub.Subscribe(ctx, topic)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := send(); err != nil {
				return err
			}
		}
	}
}

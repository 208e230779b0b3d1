package otpmock

import (
	"context"
	"errors"

	"github.com/Amit562877/fund-collector/internal/usecase/identity"
)

// Widget is a trivial identity.Widget.
type Widget struct{ WidgetID string }

func (w *Widget) ID() string { return w.WidgetID }

// Challenge confirms when the submitted code equals Code.
type Challenge struct {
	Code      string
	ConfirmFn func(ctx context.Context, code string) error
}

func (c *Challenge) Confirm(ctx context.Context, code string) error {
	if c.ConfirmFn != nil {
		return c.ConfirmFn(ctx, code)
	}
	if code != c.Code {
		return errors.New("Invalid OTP")
	}
	return nil
}

// Provider is a function-backed mock that satisfies identity.Provider.
type Provider struct {
	NewWidgetFn        func(ctx context.Context) (identity.Widget, error)
	RequestChallengeFn func(ctx context.Context, w identity.Widget, phone string) (identity.Challenge, error)

	WidgetCalls    int
	ChallengeCalls int
}

func (p *Provider) NewWidget(ctx context.Context) (identity.Widget, error) {
	p.WidgetCalls++
	if p.NewWidgetFn != nil {
		return p.NewWidgetFn(ctx)
	}
	return &Widget{WidgetID: "w1"}, nil
}

func (p *Provider) RequestChallenge(ctx context.Context, w identity.Widget, phone string) (identity.Challenge, error) {
	p.ChallengeCalls++
	if p.RequestChallengeFn != nil {
		return p.RequestChallengeFn(ctx, w, phone)
	}
	return &Challenge{Code: "123456"}, nil
}

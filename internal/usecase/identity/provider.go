package identity

import "context"

// Widget is the challenge-widget handle the external provider hands out.
// It is expensive to set up, so each session creates it once and reuses it
// across send attempts.
type Widget interface {
	ID() string
}

// Challenge is one in-flight phone verification attempt.
type Challenge interface {
	Confirm(ctx context.Context, code string) error
}

// Provider is the external phone-verification service.
type Provider interface {
	NewWidget(ctx context.Context) (Widget, error)
	RequestChallenge(ctx context.Context, w Widget, phoneE164 string) (Challenge, error)
}

package identity

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Amit562877/fund-collector/pkg/phone"
)

type State string

const (
	StateAwaitingCode         State = "awaiting-code"
	StateAwaitingVerification State = "awaiting-verification"
	StateVerified             State = "verified"
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrNoChallenge     = errors.New("no verification in progress")
)

// session is the explicit session-scoped context that owns the widget
// handle and the pending challenge; nothing lives on a process-wide global.
// mu guards every field below it; id is immutable, and expiresAt belongs to
// the Usecase map lock.
type session struct {
	id        string
	expiresAt time.Time

	mu        sync.Mutex
	state     State
	phone     string
	widget    Widget
	challenge Challenge
}

type Usecase struct {
	mu       sync.Mutex
	sessions map[string]*session

	provider Provider
	ttl      time.Duration
	log      *logrus.Entry
	now      func() time.Time
}

func NewUsecase(p Provider, ttl time.Duration, log *logrus.Entry) *Usecase {
	return &Usecase{
		sessions: make(map[string]*session),
		provider: p,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

type ResultDTO struct {
	SessionID string `json:"session_id"`
	State     State  `json:"state"`
	Message   string `json:"message"`
	// Set only after a successful verification
	RedirectTo string `json:"redirect_to,omitempty"`
}

// RequestCode normalizes the mobile, sets up the session's widget handle on
// first use and asks the provider for a challenge. A fresh session is
// created when sessionID is empty or expired. On provider failure the
// session stays put and its id travels with the error so the caller can
// retry against the same session; the provider's message is surfaced
// verbatim. Holding the session lock across the provider round trips
// serializes attempts on one session, which is what keeps the widget
// single per session.
func (u *Usecase) RequestCode(ctx context.Context, sessionID, mobile string) (*ResultDTO, error) {
	e164, err := phone.Normalize(mobile)
	if err != nil {
		return nil, err
	}

	s := u.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.widget == nil {
		w, err := u.provider.NewWidget(ctx)
		if err != nil {
			u.log.WithError(err).Warn("widget setup failed")
			return &ResultDTO{SessionID: s.id, State: s.state}, err
		}
		s.widget = w
	}

	ch, err := u.provider.RequestChallenge(ctx, s.widget, e164)
	if err != nil {
		u.log.WithField("session", s.id).WithError(err).Warn("challenge request failed")
		return &ResultDTO{SessionID: s.id, State: s.state}, err
	}

	s.phone = e164
	s.challenge = ch
	s.state = StateAwaitingVerification

	return &ResultDTO{
		SessionID: s.id,
		State:     StateAwaitingVerification,
		Message:   "OTP sent to your mobile number.",
	}, nil
}

// SubmitCode hands the entered code to the pending challenge. Failure keeps
// the session in awaiting-verification; success establishes the identity
// and points the caller at the dashboard.
func (u *Usecase) SubmitCode(ctx context.Context, sessionID, code string) (*ResultDTO, error) {
	u.mu.Lock()
	s, ok := u.sessions[sessionID]
	if ok && u.now().After(s.expiresAt) {
		delete(u.sessions, sessionID)
		ok = false
	}
	u.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingVerification || s.challenge == nil {
		return nil, ErrNoChallenge
	}

	if err := s.challenge.Confirm(ctx, code); err != nil {
		u.log.WithField("session", s.id).WithError(err).Info("otp confirm failed")
		return nil, err
	}

	s.state = StateVerified

	return &ResultDTO{
		SessionID:  s.id,
		State:      StateVerified,
		Message:    "Mobile number verified and signed up successfully!",
		RedirectTo: "/dashboard",
	}, nil
}

// SessionState reports the flow state for a session id; used by tests and
// by the handler to decide which form to render.
func (u *Usecase) SessionState(sessionID string) (State, bool) {
	u.mu.Lock()
	s, ok := u.sessions[sessionID]
	if !ok || u.now().After(s.expiresAt) {
		u.mu.Unlock()
		return "", false
	}
	u.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, true
}

func (u *Usecase) getOrCreate(sessionID string) *session {
	u.mu.Lock()
	defer u.mu.Unlock()

	// lazy sweep; the map stays small enough that a scan per call is fine
	now := u.now()
	for id, s := range u.sessions {
		if now.After(s.expiresAt) {
			delete(u.sessions, id)
		}
	}

	if s, ok := u.sessions[sessionID]; ok {
		s.expiresAt = now.Add(u.ttl)
		return s
	}
	s := &session{
		id:        uuid.NewString(),
		state:     StateAwaitingCode,
		expiresAt: now.Add(u.ttl),
	}
	u.sessions[s.id] = s
	return s
}

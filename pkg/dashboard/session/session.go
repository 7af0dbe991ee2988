package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/opst/trackboard/pkg/dashboard/navigation"
)

// Session holds credentials of the current user.
//
// Session is safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	token     string
	csrfToken string
}

func New(token string, csrfToken string) *Session {
	return &Session{token: token, csrfToken: csrfToken}
}

// Token returns the api token. It is empty after Discard.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CSRFToken returns the token for mutating requests. It is empty after Discard.
func (s *Session) CSRFToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.csrfToken
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// ExpiresAt returns the expiration time of the token.
//
// Only JWT tokens with "exp" claim have one. The signature is not verified;
// the backend does that.
func (s *Session) ExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired tells the token is known to be expired at now.
func (s *Session) Expired(now time.Time) bool {
	exp, ok := s.ExpiresAt()
	return ok && !now.Before(exp)
}

// Discard forgets credentials.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.csrfToken = ""
}

// AuthErrorHandler is called when the backend rejects credentials.
type AuthErrorHandler func(ctx context.Context, err error)

// RedirectToLogin returns AuthErrorHandler discarding the session and
// moving to the login location.
func RedirectToLogin(s *Session, nav navigation.Navigator, logger *log.Logger) AuthErrorHandler {
	return func(ctx context.Context, err error) {
		logger.Printf("unauthorized: %s", err)
		s.Discard()
		nav.Push(navigation.LoginPath)
	}
}

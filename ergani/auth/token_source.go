package auth

import (
	"context"
	"sync"
	"time"
)

// TokenSource supplies a bearer token for one outgoing request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// CachingTokenSource reuses an access token until its TTL elapses, with a
// safety skew so a token is never handed out moments before it expires.
// This is opt-in; the default client behavior authenticates before every
// submission.
type CachingTokenSource struct {
	auth *Authenticator
	ttl  time.Duration

	mu    sync.Mutex
	token string
	exp   time.Time

	skew time.Duration
}

func NewCachingTokenSource(auth *Authenticator, ttl time.Duration) *CachingTokenSource {
	return &CachingTokenSource{auth: auth, ttl: ttl, skew: 30 * time.Second}
}

func (s *CachingTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.token != "" && now.Add(s.skew).Before(s.exp) {
		return s.token, nil
	}

	token, err := s.auth.Authenticate(ctx)
	if err != nil {
		return "", err
	}

	s.token = token
	s.exp = now.Add(s.ttl)
	return token, nil
}

package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewClientFromCredentialsFile creates a Calendar client from a Google
// credentials JSON file. Service Account credentials work standalone; OAuth
// installed-app credentials additionally need a token file previously
// generated by scripts/gcal-auth.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	// Try service account first
	if config, jwtErr := google.JWTConfigFromJSON(data, calendar.CalendarScope); jwtErr == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: OAuth2 installed app credentials + stored token
	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth type but %s is missing: run scripts/gcal-auth first: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", tokenPath, err)
	}

	source := &persistingTokenSource{
		path:   tokenPath,
		source: config.TokenSource(ctx, &tok),
		last:   tok.AccessToken,
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}
	return &Client{service: svc}, nil
}

// persistingTokenSource serializes token refreshes and writes refreshed
// tokens back to the token file, so concurrent requests never race on the
// credential and a restart picks up the latest refresh.
type persistingTokenSource struct {
	mu     sync.Mutex
	path   string
	source oauth2.TokenSource
	last   string
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.source.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != s.last {
		if data, marshalErr := json.Marshal(tok); marshalErr == nil {
			// Persisting is best effort; a failed write only costs an extra
			// refresh after restart.
			_ = os.WriteFile(s.path, data, 0600)
		}
		s.last = tok.AccessToken
	}
	return tok, nil
}

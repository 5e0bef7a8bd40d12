package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// ErrNoRepos covers every upstream non-200: the original surface hides
// the distinction between an unknown user and a rate-limited call.
var ErrNoRepos = errors.New("no github profile found")

type GithubService interface {
	// Repos proxies the user's five most recent public repositories.
	// The upstream body is passed through untouched.
	Repos(ctx context.Context, username string) (json.RawMessage, error)
}

type githubService struct {
	client       *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	logger       *zap.Logger
}

func NewGithubService(baseURL, clientID, clientSecret string, logger *zap.Logger) GithubService {
	return &githubService{
		client:       &http.Client{Timeout: 10 * time.Second},
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
	}
}

func (s *githubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	if s.clientID != "" {
		q.Set("client_id", s.clientID)
		q.Set("client_secret", s.clientSecret)
	}
	uri := fmt.Sprintf("%s/users/%s/repos?%s", s.baseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "socail-connect")

	res, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("github request failed", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		s.logger.Warn("github returned non-200",
			zap.Int("status", res.StatusCode), zap.String("username", username))
		return nil, ErrNoRepos
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		s.logger.Error("github body read failed", zap.Error(err))
		return nil, fmt.Errorf("read github response: %w", err)
	}
	return body, nil
}

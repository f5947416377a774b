package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/punyakios/go-kios-client/internal/biometric"
	"github.com/punyakios/go-kios-client/internal/common/httpclient"
	"github.com/punyakios/go-kios-client/internal/common/localstorage"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/common/safeaccess"
	"github.com/punyakios/go-kios-client/internal/models"
)

var logMessage = "[SESSION]"

const (
	KeyToken            = "token"
	KeyUser             = "user"
	KeyBiometricEnabled = "biometric_enabled"
)

// State keeps the session in a string bucket. The token is cached in process after the first read.
type State struct {
	storage localstorage.LocalStorage[string]
	token   safeaccess.Value[string]
}

var (
	_ httpclient.TokenSource     = (*State)(nil)
	_ biometric.PreferenceSource = (*State)(nil)
)

func New(storage localstorage.LocalStorage[string]) *State {
	return &State{storage: storage}
}

func (s *State) Token(ctx context.Context) (string, error) {
	if token, ok := s.token.LoadOK(); ok && token != "" {
		return token, nil
	}

	token, err := s.storage.Get(ctx, KeyToken)
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	if token != "" {
		s.token.Store(token)
	}
	return token, nil
}

func (s *State) SetToken(ctx context.Context, token string) error {
	if err := s.storage.Set(ctx, KeyToken, token); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	s.token.Store(token)
	return nil
}

// User returns the cached profile, ok is false when none is stored.
func (s *State) User(ctx context.Context) (models.Profile, bool, error) {
	var profile models.Profile

	raw, err := s.storage.Get(ctx, KeyUser)
	if err != nil {
		return profile, false, fmt.Errorf("failed to read user: %w", err)
	}
	if raw == "" {
		return profile, false, nil
	}

	if err = json.Unmarshal([]byte(raw), &profile); err != nil {
		xlog.Warn(ctx, logMessage, xlog.String("message", "discarding unreadable user"), xlog.Err(err))
		return profile, false, nil
	}
	return profile, true, nil
}

func (s *State) SetUser(ctx context.Context, profile models.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err = s.storage.Set(ctx, KeyUser, string(raw)); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}
	return nil
}

// BiometricEnabled is true only when "true" is stored.
func (s *State) BiometricEnabled(ctx context.Context) (bool, error) {
	raw, err := s.storage.Get(ctx, KeyBiometricEnabled)
	if err != nil {
		return false, fmt.Errorf("failed to read biometric preference: %w", err)
	}
	return raw == "true", nil
}

func (s *State) SetBiometricEnabled(ctx context.Context, enabled bool) error {
	if err := s.storage.Set(ctx, KeyBiometricEnabled, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("failed to store biometric preference: %w", err)
	}
	return nil
}

// Clear signs the session out. The biometric preference is kept.
func (s *State) Clear(ctx context.Context) error {
	s.token.Reset()
	for _, key := range []string{KeyToken, KeyUser} {
		if err := s.storage.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

package services

import (
	"context"
	"fmt"

	"github.com/punyakios/go-kios-client/internal/common"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

type ProfileService interface {
	Refresh(ctx context.Context) (models.Profile, error)
	Update(ctx context.Context, req models.UpdateProfileRequest) (models.Profile, error)
	Cached(ctx context.Context) (models.Profile, bool, error)
	SetBiometricEnabled(ctx context.Context, enabled bool) error
	SignOut(ctx context.Context) error
}

type profile service

var _ ProfileService = (*profile)(nil)

// Refresh reads the profile from the API and stores it with its biometric preference.
func (s *profile) Refresh(ctx context.Context) (models.Profile, error) {
	return s.Update(ctx, models.UpdateProfileRequest{})
}

func (s *profile) Update(ctx context.Context, req models.UpdateProfileRequest) (result models.Profile, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if err = validate(req); err != nil {
		return result, err
	}

	result, err = s.srv.profileRepo.UpdateProfile(ctx, req)
	if err != nil {
		return result, err
	}

	if err = s.srv.session.SetUser(ctx, result); err != nil {
		return result, fmt.Errorf("%w: %w", common.ErrUnableToPersist, err)
	}
	if err = s.srv.session.SetBiometricEnabled(ctx, bool(result.BiometricEnabled)); err != nil {
		return result, fmt.Errorf("%w: %w", common.ErrUnableToPersist, err)
	}

	return result, nil
}

// Cached returns the last stored profile without calling the API.
func (s *profile) Cached(ctx context.Context) (models.Profile, bool, error) {
	return s.srv.session.User(ctx)
}

// SetBiometricEnabled changes the local preference only.
func (s *profile) SetBiometricEnabled(ctx context.Context, enabled bool) error {
	return s.srv.session.SetBiometricEnabled(ctx, enabled)
}

func (s *profile) SignOut(ctx context.Context) error {
	return s.srv.session.Clear(ctx)
}

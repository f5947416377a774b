package repositories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/punyakios/go-kios-client/internal/common/httpclient"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

type ProfileRepository interface {
	// UpdateProfile posts req to the profile endpoint, an empty request only reads the profile.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Profile, error)
}

type profileRepository struct {
	wrapper *httpclient.RequestWrapper
}

func NewProfileRepository(wrapper *httpclient.RequestWrapper) ProfileRepository {
	return &profileRepository{wrapper: wrapper}
}

func (r *profileRepository) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (profile models.Profile, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	resp, err := r.wrapper.DoRequest(ctx, http.MethodPost, endpointProfile, func(rq *resty.Request) *resty.Request {
		return rq.SetBody(req)
	})
	if err != nil {
		return profile, err
	}

	profile, _, err = decodeData[models.Profile](resp.Body())
	if err != nil {
		return profile, fmt.Errorf("failed to decode profile: %w", err)
	}
	return profile, nil
}

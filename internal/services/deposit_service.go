package services

import (
	"context"
	"encoding/json"

	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

type DepositService interface {
	Create(ctx context.Context, req models.DepositRequest) (json.RawMessage, error)
}

type deposit service

var _ DepositService = (*deposit)(nil)

func (s *deposit) Create(ctx context.Context, req models.DepositRequest) (body json.RawMessage, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if err = validate(req); err != nil {
		return nil, err
	}
	return s.srv.depositRepo.CreateDeposit(ctx, req.ToPayload())
}

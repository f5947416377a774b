package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/punyakios/go-kios-client/internal/biometric"
	"github.com/punyakios/go-kios-client/internal/common"
	"github.com/punyakios/go-kios-client/internal/models"
	"github.com/punyakios/go-kios-client/internal/monitoring"
)

const paymentEndpointPrefix = "/api/payment/"

type OrderService interface {
	Topup(ctx context.Context, req models.TopupRequest) (json.RawMessage, error)
	CheckBill(ctx context.Context, req models.BillRequest) (json.RawMessage, error)
	PayBill(ctx context.Context, req models.BillRequest) (json.RawMessage, error)
	Pay(ctx context.Context, paymentService string, payload any) (json.RawMessage, error)
}

type order service

// declinedOrder covers orders stopped before dispatch by validation or the biometric prompt.
var declinedOrder = monitoring.WithFinishExpectedErrors(common.ErrValidation, biometric.ErrBiometricAuthFailed)

var _ OrderService = (*order)(nil)

func (s *order) Topup(ctx context.Context, req models.TopupRequest) (body json.RawMessage, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err), declinedOrder)
	}()

	if err = validate(req); err != nil {
		return nil, err
	}
	return s.srv.gate.Topup(ctx, req, "")
}

func (s *order) CheckBill(ctx context.Context, req models.BillRequest) (body json.RawMessage, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err), declinedOrder)
	}()

	if err = validate(req); err != nil {
		return nil, err
	}
	return s.srv.gate.CheckBill(ctx, req, "")
}

func (s *order) PayBill(ctx context.Context, req models.BillRequest) (body json.RawMessage, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err), declinedOrder)
	}()

	if err = validate(req); err != nil {
		return nil, err
	}
	return s.srv.gate.PayBill(ctx, req, "")
}

// Pay posts payload to /api/payment/<paymentService>.
func (s *order) Pay(ctx context.Context, paymentService string, payload any) (body json.RawMessage, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		monitor.Finish(monitoring.WithFinishCheckError(err), declinedOrder)
	}()

	paymentService = strings.Trim(strings.TrimSpace(paymentService), "/")
	if paymentService == "" || strings.Contains(paymentService, "/") {
		return nil, fmt.Errorf("%w: invalid payment service %q", common.ErrValidation, paymentService)
	}
	return s.srv.gate.Pay(ctx, paymentEndpointPrefix+paymentService, payload, "")
}

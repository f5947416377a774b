package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/punyakios/go-kios-client/internal/biometric"
	"github.com/punyakios/go-kios-client/internal/common"
	"github.com/punyakios/go-kios-client/internal/models"
)

var okBody = json.RawMessage(`{"status":"success","data":{"trx_id":"T-1"}}`)

func TestOrderService_Topup(t *testing.T) {
	testHelper := serviceTestHelper(t)

	type args struct {
		ctx context.Context
		req models.TopupRequest
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		want    json.RawMessage
		wantErr error
	}{
		{
			name: "success",
			args: args{ctx: context.Background(), req: models.TopupRequest{SKU: "TSEL5", Customer: "08123456789"}},
			doMock: func(args args) {
				testHelper.mockGate.EXPECT().Topup(args.ctx, args.req, "").Return(okBody, nil)
			},
			want: okBody,
		},
		{
			name:    "missing sku is not sent",
			args:    args{ctx: context.Background(), req: models.TopupRequest{Customer: "08123456789"}},
			wantErr: common.ErrValidation,
		},
		{
			name:    "customer number must be numeric",
			args:    args{ctx: context.Background(), req: models.TopupRequest{SKU: "TSEL5", Customer: "0812-abc"}},
			wantErr: common.ErrValidation,
		},
		{
			name: "biometric cancel",
			args: args{ctx: context.Background(), req: models.TopupRequest{SKU: "TSEL5", Customer: "08123456789"}},
			doMock: func(args args) {
				testHelper.mockGate.EXPECT().Topup(args.ctx, args.req, "").
					Return(nil, &biometric.AuthFailedError{Reason: biometric.ReasonUserCancel, Silent: true})
			},
			wantErr: biometric.ErrBiometricAuthFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			got, err := testHelper.orderService.Topup(tt.args.ctx, tt.args.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderService_Bills(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()
	req := models.BillRequest{SKU: "PLNPASCA", Customer: "532110000001"}

	testHelper.mockGate.EXPECT().CheckBill(ctx, req, "").Return(okBody, nil)
	got, err := testHelper.orderService.CheckBill(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, okBody, got)

	req.RefID = "REF-1"
	testHelper.mockGate.EXPECT().PayBill(ctx, req, "").Return(nil, &common.ServerError{StatusCode: 502, Message: "bad gateway"})
	got, err = testHelper.orderService.PayBill(ctx, req)
	assert.Nil(t, got)
	assert.Equal(t, 502, common.StatusCode(err))

	_, err = testHelper.orderService.CheckBill(ctx, models.BillRequest{SKU: "PLNPASCA", Customer: "1"})
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = testHelper.orderService.PayBill(ctx, models.BillRequest{Customer: "532110000001"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestOrderService_Pay(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()
	payload := map[string]string{"customer_no": "123456"}

	tests := []struct {
		name     string
		service  string
		endpoint string
		wantErr  bool
	}{
		{name: "plain service", service: "pdam", endpoint: "/api/payment/pdam"},
		{name: "trims slashes and spaces", service: " /bpjs/ ", endpoint: "/api/payment/bpjs"},
		{name: "empty service", service: "  ", wantErr: true},
		{name: "nested path rejected", service: "pdam/../topup", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.wantErr {
				testHelper.mockGate.EXPECT().Pay(ctx, tt.endpoint, payload, "").Return(okBody, nil)
			}

			got, err := testHelper.orderService.Pay(ctx, tt.service, payload)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, okBody, got)
		})
	}
}

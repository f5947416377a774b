package biometric

import (
	"context"
	"encoding/json"
	"net/http"
)

const (
	EndpointTopup     = "/api/order/topup"
	EndpointCheckBill = "/api/order/cek-tagihan"
	EndpointPayBill   = "/api/order/bayar-tagihan"
)

const (
	PromptTransaction            = "Verify your identity to proceed with the transaction"
	PromptTopup                  = "Verify your identity to proceed with the topup"
	PromptCheckBill              = "Verify your identity to check the bill"
	PromptPayBill                = "Verify your identity to pay the bill"
	PromptPayment                = "Verify your identity to proceed with the payment"
	PromptFingerprintTransaction = "Verify your fingerprint to proceed with the transaction"
	PromptFaceTransaction        = "Verify your face to proceed with the transaction"
)

func (g *Gate) Topup(ctx context.Context, payload any, prompt string) (json.RawMessage, error) {
	return g.required(ctx, EndpointTopup, payload, orDefault(prompt, PromptTopup))
}

func (g *Gate) CheckBill(ctx context.Context, payload any, prompt string) (json.RawMessage, error) {
	return g.required(ctx, EndpointCheckBill, payload, orDefault(prompt, PromptCheckBill))
}

func (g *Gate) PayBill(ctx context.Context, payload any, prompt string) (json.RawMessage, error) {
	return g.required(ctx, EndpointPayBill, payload, orDefault(prompt, PromptPayBill))
}

// Pay posts to a payment endpoint such as /api/payment/pln.
func (g *Gate) Pay(ctx context.Context, endpoint string, payload any, prompt string) (json.RawMessage, error) {
	return g.required(ctx, endpoint, payload, orDefault(prompt, PromptPayment))
}

func (g *Gate) required(ctx context.Context, endpoint string, payload any, prompt string) (json.RawMessage, error) {
	return g.Invoke(ctx, Request{
		Endpoint: endpoint,
		Method:   http.MethodPost,
		Payload:  payload,
		Prompt:   prompt,
		Check:    CheckRequired,
	})
}

func orDefault(prompt, fallback string) string {
	if prompt == "" {
		return fallback
	}
	return prompt
}

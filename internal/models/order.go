package models

// TopupRequest is the payload of POST /api/order/topup.
type TopupRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Customer string `json:"customer_no" validate:"required,numeric,min=4,max=20"`
	Provider string `json:"provider,omitempty"`
}

// BillRequest is the payload of POST /api/order/cek-tagihan and /api/order/bayar-tagihan.
type BillRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Customer string `json:"customer_no" validate:"required,min=4,max=30"`
	RefID    string `json:"ref_id,omitempty"`
}

type DepositRequest struct {
	Amount Decimal `json:"-" validate:"decimalGreaterThan=0"`
}

// DepositPayload is the wire form, the API wants the amount as a string.
type DepositPayload struct {
	Amount string `json:"amount"`
}

func (r DepositRequest) ToPayload() DepositPayload {
	return DepositPayload{Amount: r.Amount.String()}
}

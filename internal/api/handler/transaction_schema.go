package handler

import "time"

// createTransactionRequest is the payload for POST /transactions.
type createTransactionRequest struct {
	Type          string    `json:"type"          validate:"required,oneof=income expense"`
	Amount        float64   `json:"amount"        validate:"required,gt=0"`
	Category      string    `json:"category"      validate:"required"`
	Date          time.Time `json:"date"`
	Note          string    `json:"note"`
	PaymentMethod string    `json:"paymentMethod" validate:"omitempty,oneof=cash card bank_transfer digital_wallet other"`
}

// updateTransactionRequest is the payload for PUT /transactions/:id. Absent
// fields are left unchanged.
type updateTransactionRequest struct {
	Type          *string    `json:"type"          validate:"omitempty,oneof=income expense"`
	Amount        *float64   `json:"amount"        validate:"omitempty,gt=0"`
	Category      *string    `json:"category"      validate:"omitempty,min=1"`
	Date          *time.Time `json:"date"`
	Note          *string    `json:"note"`
	PaymentMethod *string    `json:"paymentMethod" validate:"omitempty,oneof=cash card bank_transfer digital_wallet other"`
}

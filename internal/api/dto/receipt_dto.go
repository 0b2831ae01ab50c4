package dto

import "time"

// ReceiptTokenRequest payload for the receipt-token endpoints.
type ReceiptTokenRequest struct {
	InscripcionID string `json:"inscripcion_id"`
}

// ReceiptTokenResponse carries the issued bearer token.
type ReceiptTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ReceiptViewResponse is the resolved receipt behind a token.
type ReceiptViewResponse struct {
	Inscripcion InscripcionResponse `json:"inscripcion"`
	Pagos       []PagoResponse      `json:"pagos"`
	TotalPagado float64             `json:"total_pagado"`
}

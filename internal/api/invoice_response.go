package api

import "time"

// swagger:model api.InvoiceResponse
type InvoiceResponse struct {
	InvoiceID  string    `json:"invoiceId" example:"5b0f8a7c-2f3d-4e15-b9a2-6f1e9c3d2a01"`
	ClientName string    `json:"clientName" example:"Bob Co"`
	Date       time.Time `json:"date" example:"2025-05-01T15:04:05Z07:00"`
	Amount     float64   `json:"amount" example:"100"`
	Status     string    `json:"status" example:"pending"`
}

package api

// swagger:model api.CreateInvoiceRequest
type CreateInvoiceRequest struct {
	ClientName string  `json:"clientName" validate:"required" example:"Bob Co"`
	Amount     float64 `json:"amount" validate:"required,gt=0" example:"100"`
	Status     string  `json:"status" validate:"required" example:"pending"`
}

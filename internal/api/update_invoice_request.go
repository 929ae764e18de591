package api

// swagger:model api.UpdateInvoiceRequest
type UpdateInvoiceRequest struct {
	Status string `json:"status" validate:"required" example:"paid"`
}

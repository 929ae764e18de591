package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	UserID   string `json:"userId" example:"9a1f0d2e-4f0a-4c26-8a44-9f4a4a9d1c11"`
	JWTToken string `json:"jwtToken"`
	Username string `json:"username" example:"alice"`
}

package dto

// LoginRequest body POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse balasan login sukses.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type TokenObtainRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenRefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type TokenVerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type TokenAccessResponse struct {
	Access string `json:"access"`
}

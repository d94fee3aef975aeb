package types

type RegisterRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     AccountRole `json:"role,omitempty"`
}

type RegisterResponse struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   AccountRole `json:"role"`
}

// TokenResponse is the OAuth2 password-grant answer from POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

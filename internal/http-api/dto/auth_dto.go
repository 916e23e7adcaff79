package dto

// RegisterRequest: payload to create a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Language string `json:"language"`
	Age      int    `json:"age" binding:"gte=0"`
	Platform string `json:"platform"`
}

// LoginRequest: payload to authenticate.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse: access token plus basic profile.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

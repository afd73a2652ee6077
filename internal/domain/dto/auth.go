package dto

// LoginRequest represents the JSON request body for the admin login endpoint.
//
// @Description Request to authenticate the fleet administrator
// @Example {"username": "admin", "password": "change-me"}
type LoginRequest struct {
	// Username is the administrator's username.
	Username string `json:"username" binding:"required,max=100" example:"admin"`
	// Password is the administrator's password.
	Password string `json:"password" binding:"required,min=6" example:"change-me"`
} // @name LoginRequest

// TokenResponse is returned after a successful login.
//
// @Description Access token for the admin API
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"3600"`
} // @name TokenResponse

// Claims are the identity claims carried by an access token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{
			Field:   "username",
			Message: "username is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}

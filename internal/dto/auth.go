package dto

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and user identity.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userID"`
	TenantID string `json:"tenantID"`
	Name     string `json:"name"`
}

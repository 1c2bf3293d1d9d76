package domain

// User is a tenant member who can log in and approve documents.
type User struct {
	UserID       string `json:"userID"`
	TenantID     string `json:"tenantID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}

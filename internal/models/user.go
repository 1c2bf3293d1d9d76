package models

// User is the persistence twin of domain.User.
type User struct {
	UserID       string `db:"user_id"`
	TenantID     string `db:"tenant_id"`
	Username     string `db:"username"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}

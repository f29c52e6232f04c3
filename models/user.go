package models

// Valid user roles. Anything else is coerced to RoleUser on creation.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account identified by its unique email.
// PasswordHash never leaves the process; output views drop it.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:'user'"`
}

func (u *User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

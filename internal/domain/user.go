package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleUsuario UserRole = "usuario"
	UserRoleFallero UserRole = "fallero"
	UserRoleAdmin   UserRole = "admin"
)

// User represents a registered user of the platform
type User struct {
	BaseModel
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string     `gorm:"type:varchar(255);not null" json:"fullName"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'usuario'" json:"role"`
	FallaID      *uuid.UUID `gorm:"type:uuid;index:idx_users_falla_id" json:"fallaId,omitempty"`
	Active       bool       `gorm:"default:true" json:"active"`
	LastAccess   *time.Time `gorm:"type:timestamp" json:"lastAccess,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

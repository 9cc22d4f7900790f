// internal/model/employee.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// CanModerate reports whether the role is allowed to run moderation
// operations (status changes, moderation queue access).
func (r Role) CanModerate() bool {
	return r == RoleModerator || r == RoleAdmin
}

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName     string    `gorm:"type:text;not null" json:"full_name"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	SubunitID    uuid.UUID `gorm:"type:uuid;not null;index" json:"subunit_id"`
	Role         Role      `gorm:"type:text;not null;default:'user'" json:"role"`
	Fired        bool      `gorm:"not null;default:false" json:"fired"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Subunit *Subunit `gorm:"foreignKey:SubunitID" json:"subunit,omitempty"`
}

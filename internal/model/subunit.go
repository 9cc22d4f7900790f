// internal/model/subunit.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Subunit struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	LeaderID  uuid.UUID `gorm:"type:uuid;not null" json:"leader_id"`
	Phone     string    `gorm:"type:text" json:"phone"`
	Email     string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Roster: employees whose subunit reference points here.
	Employees []Employee `gorm:"foreignKey:SubunitID" json:"employees,omitempty"`
}

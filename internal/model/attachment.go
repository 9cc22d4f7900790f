// internal/model/attachment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Attachment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index" json:"author"`
	// PostID is nil while the attachment is uploaded but not yet attached
	// to any post. Attachments can be re-parented between posts.
	PostID    *uuid.UUID `gorm:"type:uuid;index" json:"post,omitempty"`
	Filename  string     `gorm:"type:text;not null" json:"filename"`
	CreatedAt time.Time  `json:"created_at"`

	Author *Employee `gorm:"foreignKey:AuthorID" json:"author_ref,omitempty"`

	// Size of the stored file in bytes. Read from disk, never persisted.
	Size int64 `gorm:"-" json:"size"`
}

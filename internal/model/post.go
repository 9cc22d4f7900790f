// internal/model/post.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type PostType string

const (
	TypeOrganizationNews         PostType = "organization_news"
	TypeSubunitNews              PostType = "subunit_news"
	TypeOrganizationAnnouncement PostType = "organization_announcement"
	TypeSubunitAnnouncement      PostType = "subunit_announcement"
)

// SubunitScoped reports whether a feed of this type only makes sense
// when filtered by a subunit.
func (t PostType) SubunitScoped() bool {
	return t == TypeSubunitNews || t == TypeSubunitAnnouncement
}

func (t PostType) Valid() bool {
	switch t {
	case TypeOrganizationNews, TypeSubunitNews, TypeOrganizationAnnouncement, TypeSubunitAnnouncement:
		return true
	}
	return false
}

type PostStatus string

const (
	StatusUnderConsideration PostStatus = "under_consideration"
	StatusPosted             PostStatus = "posted"
	StatusArchived           PostStatus = "archived"
	StatusReturned           PostStatus = "returned_for_improvement"
	StatusRejected           PostStatus = "rejected"
)

func (s PostStatus) Valid() bool {
	switch s {
	case StatusUnderConsideration, StatusPosted, StatusArchived, StatusReturned, StatusRejected:
		return true
	}
	return false
}

// ArchiveHorizon is how long a post stays visible before the scheduled
// sweep archives it. Recomputed whenever a post leaves the archived state.
const ArchiveHorizon = 4380 * time.Hour

type Post struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Type         PostType   `gorm:"type:text;not null" json:"post_type"`
	Title        string     `gorm:"type:text;not null" json:"title"`
	Body         string     `gorm:"type:text;not null" json:"body"`
	AuthorID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"author"`
	Status       PostStatus `gorm:"type:text;not null;default:'under_consideration';index" json:"status"`
	CreatedOn    time.Time  `gorm:"not null" json:"created_on"`
	PublishedOn  *time.Time `json:"published_on,omitempty"`
	ArchivedOn   time.Time  `gorm:"not null;index" json:"archived_on"`
	ApprovedByID *uuid.UUID `gorm:"type:uuid" json:"approved_by,omitempty"`

	Author      *Employee    `gorm:"foreignKey:AuthorID" json:"author_ref,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:PostID" json:"attachments"`

	// Size is the byte length of title and body plus the sizes of all
	// attachment files. Computed on read, never persisted.
	Size int64 `gorm:"-" json:"size"`
}

// ContentSize is the stored-column part of the post size: the attachment
// file sizes are added by the attachment store during hydration.
func (p *Post) ContentSize() int64 {
	return int64(len(p.Title) + len(p.Body))
}

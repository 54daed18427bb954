package models

import (
	"time"

	"educat/models/curriculum"
)

// Content type values accepted by the API
const (
	ContentTypeVideo    = "VIDEO"
	ContentTypeDocument = "DOCUMENT"
	ContentTypeImage    = "IMAGE"
	ContentTypeOther    = "OTHER"
)

// ValidContentType reports whether t is one of the accepted content types.
func ValidContentType(t string) bool {
	switch t {
	case ContentTypeVideo, ContentTypeDocument, ContentTypeImage, ContentTypeOther:
		return true
	}
	return false
}

// Content represents a catalog item with metadata and a binary attachment.
// Lessons is a set: the join table is keyed on (content_id, lesson_id) so a
// lesson can appear at most once per content.
type Content struct {
	ID          uint                `json:"id" gorm:"primarykey"`
	Title       string              `json:"title"`
	Description string              `json:"description" gorm:"type:text"`
	ContentType string              `json:"content_type"`
	AuthorID    uint                `json:"author_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	FileData    []byte              `json:"-" gorm:"type:bytea"`
	FileName    string              `json:"file_name"`
	Lessons     []curriculum.Lesson `json:"-" gorm:"many2many:content_lessons"`
}

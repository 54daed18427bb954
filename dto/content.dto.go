package dto

import "time"

// CreateContentRequest carries the multipart form fields of a create call.
// The file part is handled separately.
type CreateContentRequest struct {
	Title       string `form:"title" validate:"required,min=1,max=200"`
	Description string `form:"description" validate:"max=5000"`
	ContentType string `form:"content_type" validate:"required"`
	AuthorID    uint   `form:"author_id"`
	LessonIDs   []uint `form:"lesson_ids"`
}

// UpdateContentRequest uses pointer fields so "field absent" and "field set
// to zero value" are distinguishable: nil fields leave the stored value
// untouched. The lesson set is replaced only when LessonIDs is non-nil and
// non-empty.
type UpdateContentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ContentType *string `json:"content_type"`
	LessonIDs   []uint  `json:"lesson_ids"`
}

// ContentFilter holds the optional list-query filters. A nil field means the
// filter was not supplied.
type ContentFilter struct {
	LessonID  *uint
	TopicID   *uint
	SubjectID *uint
}

// ContentResponse is the external shape of a content item. The binary
// payload is never part of it; downloads go through a dedicated endpoint.
type ContentResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ContentType string    `json:"content_type"`
	AuthorID    uint      `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	FileName    string    `json:"file_name"`
	LessonIDs   []uint    `json:"lesson_ids"`
}

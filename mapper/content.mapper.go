package mapper

import (
	"sort"

	"educat/dto"
	"educat/models"
)

// FromCreateRequest builds a new Content from a create request. Identifier,
// timestamps, payload and lesson associations are assigned by the caller.
func FromCreateRequest(req dto.CreateContentRequest) models.Content {
	return models.Content{
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		AuthorID:    req.AuthorID,
	}
}

// ApplyUpdate overwrites only the fields present in the request; nil fields
// leave the stored value untouched. Lesson replacement is handled by the
// service because it needs repository access.
func ApplyUpdate(req dto.UpdateContentRequest, content *models.Content) {
	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.Description != nil {
		content.Description = *req.Description
	}
	if req.ContentType != nil {
		content.ContentType = *req.ContentType
	}
}

// ToResponse projects a Content onto its external shape. Lesson IDs are
// sorted ascending so responses are deterministic.
func ToResponse(content models.Content) dto.ContentResponse {
	lessonIDs := make([]uint, 0, len(content.Lessons))
	for _, lesson := range content.Lessons {
		lessonIDs = append(lessonIDs, lesson.ID)
	}
	sort.Slice(lessonIDs, func(i, j int) bool { return lessonIDs[i] < lessonIDs[j] })

	return dto.ContentResponse{
		ID:          content.ID,
		Title:       content.Title,
		Description: content.Description,
		ContentType: content.ContentType,
		AuthorID:    content.AuthorID,
		CreatedAt:   content.CreatedAt,
		UpdatedAt:   content.UpdatedAt,
		FileName:    content.FileName,
		LessonIDs:   lessonIDs,
	}
}

package service

import (
	"errors"
	"sort"

	"educat/dto"
	"educat/mapper"
	"educat/models"
	"educat/models/curriculum"

	"gorm.io/gorm"
)

// ContentService orchestrates the content lifecycle. It is request-scoped
// and stateless; every mutation runs as one transaction so the content row,
// its timestamps and its lesson associations are never observed partially.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// Create persists a new content item together with its payload and initial
// lesson associations. Lesson ids that do not resolve are silently dropped.
func (s *ContentService) Create(req dto.CreateContentRequest, fileData []byte, fileName string) (dto.ContentResponse, error) {
	if len(fileData) == 0 {
		return dto.ContentResponse{}, ErrEmptyFile
	}

	content := mapper.FromCreateRequest(req)
	content.FileData = fileData
	content.FileName = fileName

	err := s.db.Transaction(func(tx *gorm.DB) error {
		lessons, err := resolveLessons(tx, req.LessonIDs)
		if err != nil {
			return err
		}
		content.Lessons = lessons
		return tx.Create(&content).Error
	})
	if err != nil {
		return dto.ContentResponse{}, err
	}

	return mapper.ToResponse(content), nil
}

// Update applies partial-update semantics: only non-nil request fields
// overwrite stored values. The lesson set is replaced, never merged, and
// only when the incoming id list is non-empty — an empty or absent list
// leaves existing associations untouched.
func (s *ContentService) Update(contentID uint, req dto.UpdateContentRequest) (dto.ContentResponse, error) {
	var content models.Content

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Lessons").First(&content, contentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContentNotFound
			}
			return err
		}

		mapper.ApplyUpdate(req, &content)

		if len(req.LessonIDs) > 0 {
			lessons, err := resolveLessons(tx, req.LessonIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&content).Association("Lessons").Replace(lessons); err != nil {
				return err
			}
			content.Lessons = lessons
		}

		return tx.Omit("Lessons").Save(&content).Error
	})
	if err != nil {
		return dto.ContentResponse{}, err
	}

	return mapper.ToResponse(content), nil
}

// Delete removes the content row and all its lesson associations.
func (s *ContentService) Delete(contentID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var content models.Content
		if err := tx.First(&content, contentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContentNotFound
			}
			return err
		}
		if err := tx.Model(&content).Association("Lessons").Clear(); err != nil {
			return err
		}
		return tx.Delete(&content).Error
	})
}

// Get returns the external shape of a content item, without the payload.
func (s *ContentService) Get(contentID uint) (dto.ContentResponse, error) {
	var content models.Content
	if err := s.db.Preload("Lessons").First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContentResponse{}, ErrContentNotFound
		}
		return dto.ContentResponse{}, err
	}
	return mapper.ToResponse(content), nil
}

// GetWithPayload returns the raw content row including file bytes, for
// downloads.
func (s *ContentService) GetWithPayload(contentID uint) (models.Content, error) {
	var content models.Content
	if err := s.db.First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Content{}, ErrContentNotFound
		}
		return models.Content{}, err
	}
	return content, nil
}

// List resolves the supplied filters against the hierarchy and returns the
// matching content, sorted ascending by identifier. A supplied filter id
// that does not resolve short-circuits the whole query to an empty result:
// a caller passing a non-existent id must not silently receive unfiltered
// results.
func (s *ContentService) List(filter dto.ContentFilter) ([]dto.ContentResponse, error) {
	preds := make([]contentPredicate, 0, 3)

	if filter.LessonID != nil {
		var lesson curriculum.Lesson
		found, err := lookup(s.db, &lesson, *filter.LessonID)
		if err != nil {
			return nil, err
		}
		if !found {
			return []dto.ContentResponse{}, nil
		}
		preds = append(preds, lessonMatch(lesson.ID))
	}

	if filter.TopicID != nil {
		var topic curriculum.Topic
		found, err := lookup(s.db, &topic, *filter.TopicID)
		if err != nil {
			return nil, err
		}
		if !found {
			return []dto.ContentResponse{}, nil
		}
		preds = append(preds, topicMatch(topic.ID))
	}

	if filter.SubjectID != nil {
		var subject curriculum.Subject
		found, err := lookup(s.db, &subject, *filter.SubjectID)
		if err != nil {
			return nil, err
		}
		if !found {
			return []dto.ContentResponse{}, nil
		}
		preds = append(preds, subjectMatch(subject.ID))
	}

	var contents []models.Content
	if err := s.db.Preload("Lessons.Topic").Find(&contents).Error; err != nil {
		return nil, err
	}

	keep := allOf(preds...)
	out := make([]dto.ContentResponse, 0, len(contents))
	for _, content := range contents {
		if keep(content) {
			out = append(out, mapper.ToResponse(content))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// lookup resolves one hierarchy entity by primary key, distinguishing
// "absent" from a store failure.
func lookup(db *gorm.DB, dest interface{}, id uint) (bool, error) {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// resolveLessons bulk-resolves lesson ids, returning only the ones that
// exist.
func resolveLessons(tx *gorm.DB, ids []uint) ([]curriculum.Lesson, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var lessons []curriculum.Lesson
	if err := tx.Where("id IN ?", ids).Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

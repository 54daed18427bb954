package service

import "educat/models"

// contentPredicate decides whether a content item survives one filter.
// Predicates expect Lessons (and Lessons.Topic for the topic/subject checks)
// to be preloaded on the candidate.
type contentPredicate func(models.Content) bool

// lessonMatch keeps content associated with the given lesson.
func lessonMatch(lessonID uint) contentPredicate {
	return func(c models.Content) bool {
		for _, lesson := range c.Lessons {
			if lesson.ID == lessonID {
				return true
			}
		}
		return false
	}
}

// topicMatch keeps content with at least one lesson under the given topic.
func topicMatch(topicID uint) contentPredicate {
	return func(c models.Content) bool {
		for _, lesson := range c.Lessons {
			if lesson.TopicID == topicID {
				return true
			}
		}
		return false
	}
}

// subjectMatch keeps content with at least one lesson whose topic belongs to
// the given subject.
func subjectMatch(subjectID uint) contentPredicate {
	return func(c models.Content) bool {
		for _, lesson := range c.Lessons {
			if lesson.Topic != nil && lesson.Topic.SubjectID == subjectID {
				return true
			}
		}
		return false
	}
}

// allOf combines predicates with logical AND. With no predicates every
// candidate survives.
func allOf(preds ...contentPredicate) contentPredicate {
	return func(c models.Content) bool {
		for _, pred := range preds {
			if !pred(c) {
				return false
			}
		}
		return true
	}
}

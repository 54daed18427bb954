package curriculum

// Topic belongs to exactly one Subject
type Topic struct {
	ID        uint     `json:"id" gorm:"primarykey"`
	Name      string   `json:"name"`
	SubjectID uint     `json:"subject_id" gorm:"index;not null"`
	Subject   *Subject `json:"-" gorm:"foreignKey:SubjectID"`
	Lessons   []Lesson `json:"-" gorm:"foreignKey:TopicID"`
}

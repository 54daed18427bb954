package curriculum

// Lesson is the finest grain of the hierarchy. Reassigning a lesson to a
// different topic replaces TopicID, it never appends.
type Lesson struct {
	ID      uint   `json:"id" gorm:"primarykey"`
	Name    string `json:"name"`
	TopicID uint   `json:"topic_id" gorm:"index;not null"`
	Topic   *Topic `json:"-" gorm:"foreignKey:TopicID"`
}

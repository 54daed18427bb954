package curriculum

// Subject is the coarsest grain of the curriculum hierarchy
type Subject struct {
	ID     uint    `json:"id" gorm:"primarykey"`
	Name   string  `json:"name"`
	Topics []Topic `json:"-" gorm:"foreignKey:SubjectID"`
}

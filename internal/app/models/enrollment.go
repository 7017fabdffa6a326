package models

// Enrollment is a row of the course/student join table. Removing either
// side removes the row.
type Enrollment struct {
	CourseID  int64 `json:"courseId" gorm:"primaryKey;autoIncrement:false"`
	StudentID int64 `json:"studentId" gorm:"primaryKey;autoIncrement:false"`

	Course  *Course  `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Student *Student `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (Enrollment) TableName() string {
	return "course_students"
}

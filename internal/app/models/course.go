package models

// Course represents a course taught by exactly one teacher.
type Course struct {
	ID         int64  `json:"courseId" gorm:"column:id;primaryKey;autoIncrement" example:"1"`
	CourseName string `json:"courseName" gorm:"size:50;not null" binding:"required,max=50" example:"Math"`
	TeacherID  int64  `json:"teacherId" gorm:"not null;index" example:"1"`

	// Relations (populated when needed)
	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID" binding:"-"`
}

// TableName overrides the table name
func (Course) TableName() string {
	return "courses"
}

// GetID returns the primary key
func (c Course) GetID() int64 {
	return c.ID
}

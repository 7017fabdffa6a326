package models

import "time"

// Teacher represents a university teacher. Deleting a teacher removes the courses they own.
type Teacher struct {
	ID        int64     `json:"teacherId" gorm:"column:id;primaryKey;autoIncrement" example:"1"`
	FirstName string    `json:"firstName" gorm:"size:50;not null" binding:"required,max=50" example:"Anton"`
	LastName  string    `json:"lastName" gorm:"size:50;not null" binding:"required,max=50" example:"Skochulyas"`
	Email     string    `json:"email" gorm:"not null" binding:"required,email" example:"anton.skochulyas@gmail.com"`
	HireDate  time.Time `json:"hireDate" gorm:"not null" binding:"required" example:"2014-06-19T00:00:00Z"`

	// Relations (populated when needed)
	Courses []Course `json:"courses,omitempty" gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" binding:"-"`
}

// TableName overrides the table name
func (Teacher) TableName() string {
	return "teachers"
}

// GetID returns the primary key
func (t Teacher) GetID() int64 {
	return t.ID
}

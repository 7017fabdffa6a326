package models

import "time"

// Student represents an enrolled student. Email is free text.
type Student struct {
	ID          int64      `json:"studentId" gorm:"column:id;primaryKey;autoIncrement" example:"1"`
	FirstName   string     `json:"firstName" gorm:"size:50;not null" binding:"required,max=50" example:"Student0"`
	LastName    string     `json:"lastName" gorm:"size:50;not null" binding:"required,max=50" example:"LastName0"`
	Email       *string    `json:"email,omitempty" example:"student0@example.com"`
	DateOfBirth *time.Time `json:"dateOfBirth" gorm:"not null" binding:"required" example:"2004-03-01T00:00:00Z"`
}

// TableName overrides the table name
func (Student) TableName() string {
	return "students"
}

// GetID returns the primary key
func (s Student) GetID() int64 {
	return s.ID
}

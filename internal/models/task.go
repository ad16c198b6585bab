package models

import "time"

type Task struct {
	BaseModel
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	AssignedToID string     `gorm:"index;not null" json:"assigned_to_id"`
	CreatedByID  string     `gorm:"index;not null" json:"created_by_id"`
	Status       TaskStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DueDate      *time.Time `json:"due_date,omitempty"`

	AssignedTo *User `gorm:"foreignKey:AssignedToID" json:"-"`
	CreatedBy  *User `gorm:"foreignKey:CreatedByID" json:"-"`
}

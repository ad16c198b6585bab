package models

import "time"

// LeaveRequest is an employee's time-off request. Its approval status is
// independent of any customer status.
type LeaveRequest struct {
	BaseModel
	UserID       string      `gorm:"index;not null" json:"user_id"`
	Type         LeaveType   `gorm:"type:varchar(20);not null" json:"type"`
	Reason       string      `gorm:"type:text" json:"reason"`
	DateFrom     string      `gorm:"size:10;not null" json:"date_from"` // YYYY-MM-DD
	DateTo       string      `gorm:"size:10;not null" json:"date_to"`   // YYYY-MM-DD
	Status       LeaveStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DecidedAt    *time.Time  `json:"decided_at,omitempty"`
	DecidedByID  *string     `json:"decided_by_id,omitempty"`
	RejectReason string      `gorm:"type:text" json:"reject_reason,omitempty"`

	User      *User `gorm:"foreignKey:UserID" json:"-"`
	DecidedBy *User `gorm:"foreignKey:DecidedByID" json:"-"`
}

// Days is the inclusive day count of the requested range. Zero when the
// range is malformed; validation rejects that before persistence.
func (l *LeaveRequest) Days() int {
	from, err1 := time.Parse("2006-01-02", l.DateFrom)
	to, err2 := time.Parse("2006-01-02", l.DateTo)
	if err1 != nil || err2 != nil || to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

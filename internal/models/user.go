package models

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Name         string   `gorm:"not null" json:"name"`
	Phone        string   `json:"phone"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'employee'" json:"role"`
	LeaveBalance int      `gorm:"default:20" json:"leave_balance"`

	// Relations
	LeaveRequests []LeaveRequest `gorm:"foreignKey:UserID" json:"-"`
	PDFRecords    []PDFRecord    `gorm:"foreignKey:UserID" json:"-"`
	Customers     []Customer     `gorm:"foreignKey:AssignedToID" json:"-"`
}

// IsAdmin reports whether the user carries the admin flag.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

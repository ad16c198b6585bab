package dto

type CreateEmployeeRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

type UpdateEmployeeRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	LeaveBalance *int    `json:"leave_balance,omitempty" validate:"omitempty,min=0"`
}

type EmployeeListResponse struct {
	Employees      []UserDTO `json:"employees"`
	CurrentPage    int       `json:"current_page"`
	TotalPages     int       `json:"total_pages"`
	TotalEmployees int64     `json:"total_employees"`
}

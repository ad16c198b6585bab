package dto

import (
	"time"

	"namedesk_backend/internal/models"
)

type CreateTaskRequest struct {
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description" validate:"omitempty,max=2000"`
	AssignedToID string     `json:"assigned_to_id" validate:"required"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

type UpdateTaskRequest struct {
	Title        *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description  *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	AssignedToID *string    `json:"assigned_to_id,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" validate:"required,oneof=pending in_progress completed"`
}

type TaskResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	AssignedToID string            `json:"assigned_to_id"`
	CreatedByID  string            `json:"created_by_id"`
	Status       models.TaskStatus `json:"status"`
	DueDate      *time.Time        `json:"due_date,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type TaskListResponse struct {
	Tasks      []*TaskResponse `json:"tasks"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

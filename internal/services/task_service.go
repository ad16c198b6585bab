package services

import (
	"fmt"

	"namedesk_backend/internal/models"
	"namedesk_backend/internal/repositories"
	"namedesk_backend/internal/services/dto"
	"namedesk_backend/pkg/apperrors"
)

type TaskService interface {
	Create(createdByID string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	Get(id string) (*dto.TaskResponse, error)
	List(assignedToID string, status models.TaskStatus, page, limit int) (*dto.TaskListResponse, error)
	Update(id string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	UpdateStatus(id string, req *dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error)
	Delete(id string) error
}

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (s *TaskServiceImpl) Create(createdByID string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if _, err := s.userRepo.FindByID(req.AssignedToID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError("Assignee does not exist")
		}
		return nil, apperrors.InternalError(err)
	}

	task := &models.Task{
		Title:        req.Title,
		Description:  req.Description,
		AssignedToID: req.AssignedToID,
		CreatedByID:  createdByID,
		Status:       models.TaskStatusPending,
		DueDate:      req.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildTaskResponse(task), nil
}

func (s *TaskServiceImpl) Get(id string) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildTaskResponse(task), nil
}

func (s *TaskServiceImpl) List(assignedToID string, status models.TaskStatus, page, limit int) (*dto.TaskListResponse, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Unknown status %q", status))
	}

	tasks, total, err := s.taskRepo.FindAll(repositories.TaskCriteria{
		AssignedToID: assignedToID,
		Status:       status,
		Page:         page,
		PageSize:     limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, buildTaskResponse(&tasks[i]))
	}

	return &dto.TaskListResponse{
		Tasks:      items,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *TaskServiceImpl) Update(id string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.AssignedToID != nil {
		if _, err := s.userRepo.FindByID(*req.AssignedToID); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.NewBadRequestError("Assignee does not exist")
			}
			return nil, apperrors.InternalError(err)
		}
		updates["assigned_to_id"] = *req.AssignedToID
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if len(updates) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	if err := s.taskRepo.UpdateFields(id, updates); err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(id)
}

func (s *TaskServiceImpl) UpdateStatus(id string, req *dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if task.Status == req.Status {
		return buildTaskResponse(task), nil
	}

	err = s.taskRepo.UpdateStatus(id, task.Status, req.Status)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrTaskNotFound):
			return nil, apperrors.ErrNotFound(err)
		case apperrors.Is(err, repositories.ErrTaskStatusMismatch):
			return nil, apperrors.ErrConflict(err, "task", "Task status changed concurrently, reload and retry")
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return s.Get(id)
}

func (s *TaskServiceImpl) Delete(id string) error {
	if err := s.taskRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildTaskResponse(task *models.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		AssignedToID: task.AssignedToID,
		CreatedByID:  task.CreatedByID,
		Status:       task.Status,
		DueDate:      task.DueDate,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

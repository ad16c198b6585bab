package services

import (
	"fmt"

	"namedesk_backend/internal/models"
	"namedesk_backend/internal/repositories"
	"namedesk_backend/internal/services/dto"
	"namedesk_backend/pkg/apperrors"
)

type CustomerService interface {
	Create(req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Get(id string) (*dto.CustomerResponse, error)
	List(status models.CustomerStatus, assignedToID string, page, limit int) (*dto.CustomerListResponse, error)
	Update(id string, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	UpdateStatus(id string, req *dto.UpdateCustomerStatusRequest) (*dto.CustomerResponse, error)
	Delete(id string) error
}

type CustomerServiceImpl struct {
	customerRepo repositories.CustomerRepository
	userRepo     repositories.UserRepository
}

func NewCustomerService(
	customerRepo repositories.CustomerRepository,
	userRepo repositories.UserRepository,
) CustomerService {
	return &CustomerServiceImpl{
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

func (s *CustomerServiceImpl) Create(req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &models.Customer{
		FatherName:     req.FatherName,
		MotherName:     req.MotherName,
		Email:          req.Email,
		WhatsappNumber: req.WhatsappNumber,
		BabyGender:     req.BabyGender,
		Status:         models.CustomerStatusNewRequest,
		PaymentDate:    req.PaymentDate,
		Note:           req.Note,
		Version:        1,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildCustomerResponse(customer), nil
}

func (s *CustomerServiceImpl) Get(id string) (*dto.CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildCustomerResponse(customer), nil
}

func (s *CustomerServiceImpl) List(status models.CustomerStatus, assignedToID string, page, limit int) (*dto.CustomerListResponse, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Unknown status %q", status))
	}

	customers, total, err := s.customerRepo.FindAll(repositories.CustomerCriteria{
		Status:       status,
		AssignedToID: assignedToID,
		Page:         page,
		PageSize:     limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		items = append(items, buildCustomerResponse(&customers[i]))
	}

	return &dto.CustomerListResponse{
		Customers:  items,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Update applies the requested field changes, guarded by the version the
// client read. A stale version is a conflict; the client must reload.
func (s *CustomerServiceImpl) Update(id string, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	updates := map[string]interface{}{}
	if req.FatherName != nil {
		updates["father_name"] = *req.FatherName
	}
	if req.MotherName != nil {
		updates["mother_name"] = *req.MotherName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.WhatsappNumber != nil {
		updates["whatsapp_number"] = *req.WhatsappNumber
	}
	if req.BabyGender != nil {
		updates["baby_gender"] = *req.BabyGender
	}
	if req.PaymentDate != nil {
		updates["payment_date"] = *req.PaymentDate
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if req.AssignedToID != nil {
		if *req.AssignedToID != "" {
			if _, err := s.userRepo.FindByID(*req.AssignedToID); err != nil {
				if apperrors.Is(err, repositories.ErrUserNotFound) {
					return nil, apperrors.NewBadRequestError("Assignee does not exist")
				}
				return nil, apperrors.InternalError(err)
			}
			updates["assigned_to_id"] = *req.AssignedToID
		} else {
			updates["assigned_to_id"] = nil
		}
	}
	if len(updates) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	err := s.customerRepo.UpdateFields(id, req.Version, updates)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrCustomerNotFound):
			return nil, apperrors.ErrNotFound(err)
		case apperrors.Is(err, repositories.ErrVersionMismatch):
			return nil, apperrors.ErrStaleVersion
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	return s.Get(id)
}

// UpdateStatus moves the customer along the pipeline. Only edges in the
// transition table are allowed; the write is conditional on the row still
// being in the status the caller saw.
func (s *CustomerServiceImpl) UpdateStatus(id string, req *dto.UpdateCustomerStatusRequest) (*dto.CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !customer.Status.CanTransition(req.Status) {
		return nil, apperrors.ErrInvalidStatus(
			"customer",
			fmt.Sprintf("Cannot move customer from %s to %s", customer.Status, req.Status),
		)
	}

	err = s.customerRepo.UpdateStatus(id, customer.Status, req.Status)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrCustomerNotFound):
			return nil, apperrors.ErrNotFound(err)
		case apperrors.Is(err, repositories.ErrStatusMismatch):
			return nil, apperrors.ErrStaleVersion
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	return s.Get(id)
}

func (s *CustomerServiceImpl) Delete(id string) error {
	if err := s.customerRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrCustomerNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildCustomerResponse(customer *models.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             customer.ID,
		FatherName:     customer.FatherName,
		MotherName:     customer.MotherName,
		Email:          customer.Email,
		WhatsappNumber: customer.WhatsappNumber,
		BabyGender:     customer.BabyGender,
		Status:         customer.Status,
		PaymentDate:    customer.PaymentDate,
		Note:           customer.Note,
		AssignedToID:   customer.AssignedToID,
		Version:        customer.Version,
		CreatedAt:      customer.CreatedAt,
		UpdatedAt:      customer.UpdatedAt,
	}
}

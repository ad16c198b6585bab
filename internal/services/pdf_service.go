package services

import (
	"fmt"
	"time"

	"namedesk_backend/internal/models"
	"namedesk_backend/internal/repositories"
	"namedesk_backend/internal/services/dto"
	"namedesk_backend/pkg/apperrors"
)

type PDFService interface {
	RecordGeneration(userID string, req *dto.CreatePDFRecordRequest) (*dto.PDFRecordResponse, error)
	ListForCustomer(customerID string) ([]*dto.PDFRecordResponse, error)
	ListForUser(userID string) ([]*dto.PDFRecordResponse, error)
}

type PDFServiceImpl struct {
	pdfRepo      repositories.PDFRepository
	customerRepo repositories.CustomerRepository
}

func NewPDFService(pdfRepo repositories.PDFRepository, customerRepo repositories.CustomerRepository) PDFService {
	return &PDFServiceImpl{
		pdfRepo:      pdfRepo,
		customerRepo: customerRepo,
	}
}

// RecordGeneration tracks that a report was generated for a customer.
// Reports only make sense for work in flight or already delivered, so the
// customer must be in progress or completed.
func (s *PDFServiceImpl) RecordGeneration(userID string, req *dto.CreatePDFRecordRequest) (*dto.PDFRecordResponse, error) {
	customer, err := s.customerRepo.FindByID(req.CustomerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if customer.Status != models.CustomerStatusInProgress && customer.Status != models.CustomerStatusCompleted {
		return nil, apperrors.ErrInvalidStatus(
			"pdf",
			fmt.Sprintf("Cannot generate a report for a customer in status %s", customer.Status),
		)
	}

	record := &models.PDFRecord{
		CustomerID:  req.CustomerID,
		UserID:      userID,
		FileName:    req.FileName,
		GeneratedAt: time.Now(),
	}

	if err := s.pdfRepo.Create(record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildPDFRecordResponse(record), nil
}

func (s *PDFServiceImpl) ListForCustomer(customerID string) ([]*dto.PDFRecordResponse, error) {
	if _, err := s.customerRepo.FindByID(customerID); err != nil {
		if apperrors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	records, err := s.pdfRepo.FindByCustomer(customerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.PDFRecordResponse, 0, len(records))
	for i := range records {
		items = append(items, buildPDFRecordResponse(&records[i]))
	}
	return items, nil
}

// ListForUser lists every report the user generated, newest first.
func (s *PDFServiceImpl) ListForUser(userID string) ([]*dto.PDFRecordResponse, error) {
	records, err := s.pdfRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.PDFRecordResponse, 0, len(records))
	for i := range records {
		items = append(items, buildPDFRecordResponse(&records[i]))
	}
	return items, nil
}

func buildPDFRecordResponse(record *models.PDFRecord) *dto.PDFRecordResponse {
	return &dto.PDFRecordResponse{
		ID:          record.ID,
		CustomerID:  record.CustomerID,
		UserID:      record.UserID,
		FileName:    record.FileName,
		GeneratedAt: record.GeneratedAt,
	}
}

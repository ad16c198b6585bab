package services

import (
	"encoding/json"

	"namedesk_backend/internal/models"
	"namedesk_backend/internal/repositories"
	"namedesk_backend/internal/services/dto"
	"namedesk_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type BabyNameService interface {
	Create(req *dto.CreateBabyNameRequest) (*dto.BabyNameResponse, error)
	CreateBulk(req *dto.BulkCreateBabyNamesRequest) (int, error)
	Get(id string) (*dto.BabyNameResponse, error)
	List(criteria dto.BabyNameCriteria) (*dto.BabyNameListResponse, error)
	Update(id string, req *dto.UpdateBabyNameRequest) (*dto.BabyNameResponse, error)
	Delete(id string) error
}

type BabyNameServiceImpl struct {
	babyNameRepo repositories.BabyNameRepository
}

func NewBabyNameService(babyNameRepo repositories.BabyNameRepository) BabyNameService {
	return &BabyNameServiceImpl{babyNameRepo: babyNameRepo}
}

func (s *BabyNameServiceImpl) Create(req *dto.CreateBabyNameRequest) (*dto.BabyNameResponse, error) {
	name, err := babyNameFromRequest(req)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.babyNameRepo.Create(name); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildBabyNameResponse(name), nil
}

// CreateBulk loads a batch of catalogue entries and returns how many were
// created. The batch is all-or-nothing at the database level.
func (s *BabyNameServiceImpl) CreateBulk(req *dto.BulkCreateBabyNamesRequest) (int, error) {
	names := make([]models.BabyName, 0, len(req.Names))
	for _, item := range req.Names {
		name, err := babyNameFromRequest(item)
		if err != nil {
			return 0, apperrors.InternalError(err)
		}
		names = append(names, *name)
	}

	if err := s.babyNameRepo.CreateBulk(names); err != nil {
		return 0, apperrors.InternalError(err)
	}
	return len(names), nil
}

func (s *BabyNameServiceImpl) Get(id string) (*dto.BabyNameResponse, error) {
	name, err := s.babyNameRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBabyNameNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildBabyNameResponse(name), nil
}

func (s *BabyNameServiceImpl) List(criteria dto.BabyNameCriteria) (*dto.BabyNameListResponse, error) {
	names, total, err := s.babyNameRepo.FindAll(repositories.BabyNameCriteria{
		Gender:   criteria.Gender,
		Rashi:    criteria.Rashi,
		Zodiac:   criteria.Zodiac,
		Search:   criteria.Search,
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.BabyNameResponse, 0, len(names))
	for i := range names {
		items = append(items, buildBabyNameResponse(&names[i]))
	}

	return &dto.BabyNameListResponse{
		Names:      items,
		Total:      total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: totalPages(total, criteria.PageSize),
	}, nil
}

func (s *BabyNameServiceImpl) Update(id string, req *dto.UpdateBabyNameRequest) (*dto.BabyNameResponse, error) {
	updates := map[string]interface{}{}
	if req.BookName != nil {
		updates["book_name"] = *req.BookName
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.NameEnglish != nil {
		updates["name_english"] = *req.NameEnglish
	}
	if req.NameDevanagari != nil {
		updates["name_devanagari"] = *req.NameDevanagari
	}
	if req.Meaning != nil {
		updates["meaning"] = *req.Meaning
	}
	if req.Numerology != nil {
		updates["numerology"] = *req.Numerology
	}
	if req.Zodiac != nil {
		updates["zodiac"] = *req.Zodiac
	}
	if req.Rashi != nil {
		updates["rashi"] = *req.Rashi
	}
	if req.Nakshatra != nil {
		updates["nakshatra"] = *req.Nakshatra
	}
	if req.PlanetaryInfluence != nil {
		updates["planetary_influence"] = *req.PlanetaryInfluence
	}
	if req.Element != nil {
		updates["element"] = *req.Element
	}
	if req.PageNo != nil {
		updates["page_no"] = *req.PageNo
	}
	if req.Extras != nil {
		raw, err := json.Marshal(req.Extras)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		updates["extras"] = datatypes.JSON(raw)
	}
	if len(updates) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	if err := s.babyNameRepo.UpdateFields(id, updates); err != nil {
		if apperrors.Is(err, repositories.ErrBabyNameNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(id)
}

func (s *BabyNameServiceImpl) Delete(id string) error {
	if err := s.babyNameRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrBabyNameNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func babyNameFromRequest(req *dto.CreateBabyNameRequest) (*models.BabyName, error) {
	var extrasJSON datatypes.JSON
	if req.Extras != nil {
		raw, err := json.Marshal(req.Extras)
		if err != nil {
			return nil, err
		}
		extrasJSON = datatypes.JSON(raw)
	}

	return &models.BabyName{
		BookName:           req.BookName,
		Gender:             req.Gender,
		NameEnglish:        req.NameEnglish,
		NameDevanagari:     req.NameDevanagari,
		Meaning:            req.Meaning,
		Numerology:         req.Numerology,
		Zodiac:             req.Zodiac,
		Rashi:              req.Rashi,
		Nakshatra:          req.Nakshatra,
		PlanetaryInfluence: req.PlanetaryInfluence,
		Element:            req.Element,
		PageNo:             req.PageNo,
		Extras:             extrasJSON,
	}, nil
}

func buildBabyNameResponse(name *models.BabyName) *dto.BabyNameResponse {
	var extras map[string]interface{}
	if len(name.Extras) > 0 {
		if err := json.Unmarshal(name.Extras, &extras); err != nil {
			extras = nil
		}
	}

	return &dto.BabyNameResponse{
		ID:                 name.ID,
		BookName:           name.BookName,
		Gender:             name.Gender,
		NameEnglish:        name.NameEnglish,
		NameDevanagari:     name.NameDevanagari,
		Meaning:            name.Meaning,
		Numerology:         name.Numerology,
		Zodiac:             name.Zodiac,
		Rashi:              name.Rashi,
		Nakshatra:          name.Nakshatra,
		PlanetaryInfluence: name.PlanetaryInfluence,
		Element:            name.Element,
		PageNo:             name.PageNo,
		Extras:             extras,
		CreatedAt:          name.CreatedAt,
	}
}

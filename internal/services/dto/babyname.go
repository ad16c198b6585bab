package dto

import "time"

type CreateBabyNameRequest struct {
	BookName           string                 `json:"book_name" validate:"omitempty,max=200"`
	Gender             string                 `json:"gender" validate:"required,oneof=male female unisex"`
	NameEnglish        string                 `json:"name_english" validate:"required,max=100"`
	NameDevanagari     string                 `json:"name_devanagari" validate:"omitempty,max=100"`
	Meaning            string                 `json:"meaning" validate:"omitempty,max=1000"`
	Numerology         string                 `json:"numerology" validate:"omitempty,max=50"`
	Zodiac             string                 `json:"zodiac" validate:"omitempty,max=50"`
	Rashi              string                 `json:"rashi" validate:"omitempty,max=50"`
	Nakshatra          string                 `json:"nakshatra" validate:"omitempty,max=50"`
	PlanetaryInfluence string                 `json:"planetary_influence" validate:"omitempty,max=100"`
	Element            string                 `json:"element" validate:"omitempty,max=50"`
	PageNo             int                    `json:"page_no" validate:"omitempty,min=0"`
	Extras             map[string]interface{} `json:"extras"`
}

// BulkCreateBabyNamesRequest loads many catalogue entries in one call.
// 'dive' validates every element.
type BulkCreateBabyNamesRequest struct {
	Names []*CreateBabyNameRequest `json:"names" validate:"required,min=1,dive"`
}

type UpdateBabyNameRequest struct {
	BookName           *string                `json:"book_name,omitempty" validate:"omitempty,max=200"`
	Gender             *string                `json:"gender,omitempty" validate:"omitempty,oneof=male female unisex"`
	NameEnglish        *string                `json:"name_english,omitempty" validate:"omitempty,max=100"`
	NameDevanagari     *string                `json:"name_devanagari,omitempty" validate:"omitempty,max=100"`
	Meaning            *string                `json:"meaning,omitempty" validate:"omitempty,max=1000"`
	Numerology         *string                `json:"numerology,omitempty" validate:"omitempty,max=50"`
	Zodiac             *string                `json:"zodiac,omitempty" validate:"omitempty,max=50"`
	Rashi              *string                `json:"rashi,omitempty" validate:"omitempty,max=50"`
	Nakshatra          *string                `json:"nakshatra,omitempty" validate:"omitempty,max=50"`
	PlanetaryInfluence *string                `json:"planetary_influence,omitempty" validate:"omitempty,max=100"`
	Element            *string                `json:"element,omitempty" validate:"omitempty,max=50"`
	PageNo             *int                   `json:"page_no,omitempty" validate:"omitempty,min=0"`
	Extras             map[string]interface{} `json:"extras,omitempty"`
}

type BabyNameResponse struct {
	ID                 string                 `json:"id"`
	BookName           string                 `json:"book_name,omitempty"`
	Gender             string                 `json:"gender"`
	NameEnglish        string                 `json:"name_english"`
	NameDevanagari     string                 `json:"name_devanagari,omitempty"`
	Meaning            string                 `json:"meaning,omitempty"`
	Numerology         string                 `json:"numerology,omitempty"`
	Zodiac             string                 `json:"zodiac,omitempty"`
	Rashi              string                 `json:"rashi,omitempty"`
	Nakshatra          string                 `json:"nakshatra,omitempty"`
	PlanetaryInfluence string                 `json:"planetary_influence,omitempty"`
	Element            string                 `json:"element,omitempty"`
	PageNo             int                    `json:"page_no,omitempty"`
	Extras             map[string]interface{} `json:"extras,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
}

type BabyNameListResponse struct {
	Names      []*BabyNameResponse `json:"names"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

type BabyNameCriteria struct {
	Gender   string
	Rashi    string
	Zodiac   string
	Search   string
	Page     int
	PageSize int
}

package models

import "gorm.io/datatypes"

// BabyName is one catalogue entry from a naming book.
type BabyName struct {
	BaseModel
	BookName           string         `gorm:"index" json:"book_name"`
	Gender             string         `gorm:"type:varchar(10);index" json:"gender"`
	NameEnglish        string         `gorm:"not null;index" json:"name_english"`
	NameDevanagari     string         `json:"name_devanagari"`
	Meaning            string         `gorm:"type:text" json:"meaning"`
	Numerology         string         `json:"numerology"`
	Zodiac             string         `gorm:"index" json:"zodiac"`
	Rashi              string         `gorm:"index" json:"rashi"`
	Nakshatra          string         `json:"nakshatra"`
	PlanetaryInfluence string         `json:"planetary_influence"`
	Element            string         `json:"element"`
	PageNo             int            `json:"page_no"`
	Extras             datatypes.JSON `gorm:"type:jsonb" json:"extras,omitempty"`
}

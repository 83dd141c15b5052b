package db

import "gorm.io/gorm"

// CaseStudy documents a delivered project. The narrative fields hold markdown.
type CaseStudy struct {
	gorm.Model
	SluggedContent
	ClientName string
	Industry   string
	Challenge  string `gorm:"type:text"`
	Approach   string `gorm:"type:text"`
	Results    string `gorm:"type:text"`
}

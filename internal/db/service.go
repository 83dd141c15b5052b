package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is a single offering, optionally grouped under a Solution.
// Features holds a JSON array of short bullet strings.
type Service struct {
	gorm.Model
	SluggedContent
	Icon       string
	Features   datatypes.JSON `gorm:"type:json"`
	SolutionID *uint          `gorm:"index"`
}

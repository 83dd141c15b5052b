package db

import "gorm.io/gorm"

// Solution bundles related services under one umbrella offering.
type Solution struct {
	gorm.Model
	SluggedContent
	Summary  string    `gorm:"type:text"`
	Services []Service `gorm:"foreignKey:SolutionID"`
}

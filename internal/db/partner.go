package db

import "gorm.io/gorm"

// Partner is a logo entry in the partner strip. ImageURL holds the logo.
type Partner struct {
	gorm.Model
	SluggedContent
	WebsiteURL string
}

package db

import "gorm.io/gorm"

// TeamMember is a person shown on the team page.
type TeamMember struct {
	gorm.Model
	SluggedContent
	Position    string
	Bio         string `gorm:"type:text"`
	Email       string
	LinkedInURL string
}

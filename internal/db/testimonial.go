package db

import "gorm.io/gorm"

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	gorm.Model
	SluggedContent
	Quote       string `gorm:"type:text;not null"`
	AuthorName  string
	AuthorTitle string
	CompanyName string
	Rating      int
}

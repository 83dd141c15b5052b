package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Well-known page slugs created by the seeder.
const (
	PageSlugHome     = "home"
	PageSlugAbout    = "about"
	PageSlugServices = "services"
	PageSlugContact  = "contact"
)

// DefaultPageSlugs returns the slugs every installation starts with.
func DefaultPageSlugs() []string {
	return []string{PageSlugHome, PageSlugAbout, PageSlugServices, PageSlugContact}
}

// Page is a public page identified by its slug. Structured content lives in
// the owned ContentSection rows; Content is a free-form JSON blob for
// page-level data that does not belong to any section.
type Page struct {
	gorm.Model
	Slug            string `gorm:"uniqueIndex;not null"`
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	Content         datatypes.JSON `gorm:"type:json"`
	UpdatedByID     *uint
	Sections        []ContentSection `gorm:"foreignKey:PageID"`
}

// ContentSection is a named block of page content. The JSON payload's shape is
// section-key-specific; (page_id, section_key) is unique and sections are
// upserted by that pair.
type ContentSection struct {
	gorm.Model
	PageID     uint           `gorm:"uniqueIndex:idx_page_section;not null"`
	SectionKey string         `gorm:"uniqueIndex:idx_page_section;size:100;not null"`
	Content    datatypes.JSON `gorm:"type:json"`
	SortOrder  int
}

package db

// SluggedContent carries the columns shared by every publicly addressable
// content table: Service, Solution, Insight, TeamMember, Testimonial,
// CaseStudy and Partner. Slug is unique within each table; rows with an empty
// slug are persisted but not publicly addressable, so the unique index is
// partial.
type SluggedContent struct {
	Title          string `gorm:"not null"`
	Slug           string `gorm:"uniqueIndex:,where:slug <> ''"`
	Description    string `gorm:"type:text"`
	ImageURL       string
	SortOrder      int
	IsActive       bool `gorm:"default:true"`
	SeoTitle       string
	SeoDescription string
	SeoKeywords    string
	CreatedByID    *uint
	UpdatedByID    *uint
}

// GetSlug returns the stored slug.
func (c *SluggedContent) GetSlug() string { return c.Slug }

// SetSlug overwrites the stored slug.
func (c *SluggedContent) SetSlug(slug string) { c.Slug = slug }

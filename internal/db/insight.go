package db

import (
	"time"

	"gorm.io/gorm"
)

// Insight types.
const (
	InsightTypeArticle  = "article"
	InsightTypeNews     = "news"
	InsightTypeCaseNote = "case-note"
)

// Insight statuses.
const (
	InsightStatusDraft     = "draft"
	InsightStatusPublished = "published"
)

// Insight is a blog-style entry. Content is markdown; the public handler
// renders it to sanitized HTML.
type Insight struct {
	gorm.Model
	SluggedContent
	Type        string `gorm:"default:article"`
	Status      string `gorm:"default:draft;index"`
	Content     string `gorm:"type:text"`
	Excerpt     string
	PublishedAt *time.Time
}

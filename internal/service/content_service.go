package service

import (
	"errors"
	"strings"

	"github.com/jiftek/website/internal/db"
	"gorm.io/gorm"
)

var ErrTitleRequired = errors.New("title is required")

// ContentInput carries the form fields shared by every slugged entity.
type ContentInput struct {
	Title          string
	Slug           string
	Description    string
	ImageURL       string
	SortOrder      int
	IsActive       *bool
	SeoTitle       string
	SeoDescription string
	SeoKeywords    string
}

func applyContentFields(dst *db.SluggedContent, in ContentInput) {
	dst.Title = strings.TrimSpace(in.Title)
	dst.Description = strings.TrimSpace(in.Description)
	dst.ImageURL = strings.TrimSpace(in.ImageURL)
	dst.SortOrder = in.SortOrder
	if in.IsActive != nil {
		dst.IsActive = *in.IsActive
	}
	dst.SeoTitle = strings.TrimSpace(in.SeoTitle)
	dst.SeoDescription = strings.TrimSpace(in.SeoDescription)
	dst.SeoKeywords = strings.TrimSpace(in.SeoKeywords)
}

// createContent fills the shared columns of a new entity row, assigns its
// slug and persists it via save, retrying with the next suffix on a slug
// collision. CreatedBy is stamped with the acting user when absent.
func createContent(gdb *gorm.DB, model interface{}, fields *db.SluggedContent, in ContentInput, actingUserID uint, save func() error) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return ErrTitleRequired
	}

	applyContentFields(fields, in)
	if in.IsActive == nil {
		fields.IsActive = true
	}

	base := Slugify(in.Slug)
	if base == "" {
		base = Slugify(title)
	}
	slug, err := uniqueSlug(gdb, model, base, 0)
	if err != nil {
		return err
	}
	fields.Slug = slug

	if actingUserID != 0 {
		if fields.CreatedByID == nil {
			fields.CreatedByID = &actingUserID
		}
		fields.UpdatedByID = &actingUserID
	}

	return persistWithSlugRetry(gdb, fields, model, base, 0, save)
}

// updateContent applies the shared columns of an entity update, re-deriving
// the slug only when the caller supplied one explicitly or the title changed
// while no explicit slug was given. UpdatedBy is stamped on every update.
func updateContent(gdb *gorm.DB, model interface{}, fields *db.SluggedContent, in ContentInput, entityID, actingUserID uint, save func() error) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return ErrTitleRequired
	}

	titleChanged := title != fields.Title
	prevSlug := fields.Slug
	applyContentFields(fields, in)

	slug, err := resolveSlug(gdb, model, in.Slug, prevSlug, title, titleChanged, entityID)
	if err != nil {
		return err
	}
	fields.Slug = slug

	base := Slugify(in.Slug)
	if base == "" && (prevSlug == "" || titleChanged) {
		base = Slugify(title)
	}

	if actingUserID != 0 {
		fields.UpdatedByID = &actingUserID
	}

	return persistWithSlugRetry(gdb, fields, model, base, entityID, save)
}

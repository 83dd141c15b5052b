package service

import (
	"errors"
	"strings"

	"github.com/jiftek/website/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound    = errors.New("page not found")
	ErrPageSlugMissing = errors.New("page slug is required")
	ErrSectionNotFound = errors.New("section not found")
	ErrSectionOrder    = errors.New("invalid section order")
)

// PageService manages pages and their named content sections.
type PageService struct {
	db *gorm.DB
}

// PageMetaInput carries the SEO fields and free-form content editable per
// page. A nil Content leaves the stored blob untouched.
type PageMetaInput struct {
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	Content         []byte
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// GetOrCreate fetches the page with the given slug, creating an empty one on
// first access. Creation is idempotent per slug.
func (s *PageService) GetOrCreate(slug string) (*db.Page, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrPageSlugMissing
	}

	var page db.Page
	err := s.db.Where("slug = ?", slug).First(&page).Error
	if err == nil {
		return &page, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	page = db.Page{Slug: slug}
	if err := s.db.Create(&page).Error; err != nil {
		// Lost a create race; the row exists now.
		var existing db.Page
		if ferr := s.db.Where("slug = ?", slug).First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &page, nil
}

// GetBySlug fetches a page with its sections ordered for rendering.
func (s *PageService) GetBySlug(slug string) (*db.Page, error) {
	var page db.Page
	err := s.db.
		Preload("Sections", func(gdb *gorm.DB) *gorm.DB {
			return gdb.Order("sort_order asc").Order("id asc")
		}).
		Where("slug = ?", slug).
		First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// UpdateMeta replaces the page's SEO fields and records the acting user.
func (s *PageService) UpdateMeta(slug string, input PageMetaInput, actingUserID uint) (*db.Page, error) {
	page, err := s.GetOrCreate(slug)
	if err != nil {
		return nil, err
	}

	page.MetaTitle = strings.TrimSpace(input.MetaTitle)
	page.MetaDescription = strings.TrimSpace(input.MetaDescription)
	page.MetaKeywords = strings.TrimSpace(input.MetaKeywords)
	if input.Content != nil {
		page.Content = datatypes.JSON(input.Content)
	}
	if actingUserID != 0 {
		page.UpdatedByID = &actingUserID
	}

	if err := s.db.Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// UpsertSection creates or fully replaces the section identified by
// (page slug, section key). The content payload is validated against the
// section registry and stored verbatim; prior content is not merged.
func (s *PageService) UpsertSection(pageSlug, sectionKey string, content []byte, sortOrder int, actingUserID uint) (*db.ContentSection, error) {
	sectionKey = strings.TrimSpace(sectionKey)
	if err := ValidateSectionContent(sectionKey, content); err != nil {
		return nil, err
	}

	page, err := s.GetOrCreate(pageSlug)
	if err != nil {
		return nil, err
	}

	var section db.ContentSection
	err = s.db.Transaction(func(tx *gorm.DB) error {
		findErr := tx.Where("page_id = ? AND section_key = ?", page.ID, sectionKey).
			First(&section).Error
		if findErr != nil {
			if !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return findErr
			}
			section = db.ContentSection{
				PageID:     page.ID,
				SectionKey: sectionKey,
			}
		}

		section.Content = datatypes.JSON(content)
		section.SortOrder = sortOrder
		if err := tx.Save(&section).Error; err != nil {
			return err
		}

		if actingUserID != 0 {
			return tx.Model(&db.Page{}).
				Where("id = ?", page.ID).
				Update("updated_by_id", actingUserID).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// GetSection returns the section stored for (page slug, section key).
func (s *PageService) GetSection(pageSlug, sectionKey string) (*db.ContentSection, error) {
	page, err := s.GetBySlug(pageSlug)
	if err != nil {
		return nil, err
	}

	var section db.ContentSection
	if err := s.db.Where("page_id = ? AND section_key = ?", page.ID, sectionKey).
		First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

// ListSections returns the page's sections ordered by sort order.
func (s *PageService) ListSections(pageSlug string) ([]db.ContentSection, error) {
	page, err := s.GetBySlug(pageSlug)
	if err != nil {
		return nil, err
	}
	return page.Sections, nil
}

// ReorderSections updates sort order to match the given key sequence.
func (s *PageService) ReorderSections(pageSlug string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			return ErrSectionOrder
		}
		if _, ok := seen[key]; ok {
			return ErrSectionOrder
		}
		seen[key] = struct{}{}
	}

	page, err := s.GetBySlug(pageSlug)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for idx, key := range keys {
			result := tx.Model(&db.ContentSection{}).
				Where("page_id = ? AND section_key = ?", page.ID, key).
				Update("sort_order", idx)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrSectionNotFound
			}
		}
		return nil
	})
}

// DeleteSections removes every section of a page. Individual sections are
// never deleted outside this whole-page cleanup.
func (s *PageService) DeleteSections(pageSlug string) error {
	page, err := s.GetBySlug(pageSlug)
	if err != nil {
		return err
	}
	return s.db.Unscoped().
		Where("page_id = ?", page.ID).
		Delete(&db.ContentSection{}).Error
}

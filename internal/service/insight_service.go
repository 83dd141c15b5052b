package service

import (
	"errors"
	"strings"
	"time"

	"github.com/jiftek/website/internal/db"
	"gorm.io/gorm"
)

var (
	ErrInsightNotFound      = errors.New("insight not found")
	ErrInsightTypeInvalid   = errors.New("insight type is invalid")
	ErrInsightStatusInvalid = errors.New("insight status is invalid")
)

// InsightService manages blog-style insight entries.
type InsightService struct {
	db *gorm.DB
}

// InsightInput represents fields accepted when creating or updating an insight.
type InsightInput struct {
	ContentInput
	Type        string
	Status      string
	Content     string
	Excerpt     string
	PublishedAt *time.Time
}

// InsightFilter narrows admin insight listings.
type InsightFilter struct {
	Type   string
	Status string
	Search string
}

// NewInsightService creates an InsightService instance.
func NewInsightService(gdb *gorm.DB) *InsightService {
	return &InsightService{db: gdb}
}

// List returns insights for the admin list view, newest first.
func (s *InsightService) List(filter InsightFilter) ([]db.Insight, error) {
	query := s.db.Model(&db.Insight{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("(title LIKE ? OR content LIKE ? OR excerpt LIKE ?)", search, search, search)
	}

	var insights []db.Insight
	if err := query.Order("created_at desc").Order("id desc").Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

// ListPublished returns published insights in reverse publication order for
// the public site.
func (s *InsightService) ListPublished() ([]db.Insight, error) {
	var insights []db.Insight
	if err := s.db.
		Where("status = ? AND is_active = ?", db.InsightStatusPublished, true).
		Order("published_at desc").Order("id desc").
		Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

// Get fetches an insight by id.
func (s *InsightService) Get(id uint) (*db.Insight, error) {
	var insight db.Insight
	if err := s.db.First(&insight, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsightNotFound
		}
		return nil, err
	}
	return &insight, nil
}

// GetPublishedBySlug fetches a published insight by its public slug.
func (s *InsightService) GetPublishedBySlug(slug string) (*db.Insight, error) {
	if slug == "" {
		return nil, ErrInsightNotFound
	}
	var insight db.Insight
	if err := s.db.
		Where("slug = ? AND status = ? AND is_active = ?", slug, db.InsightStatusPublished, true).
		First(&insight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsightNotFound
		}
		return nil, err
	}
	return &insight, nil
}

// Create persists a new insight on behalf of the acting user. New insights
// default to drafts; publishing stamps PublishedAt when none was supplied.
func (s *InsightService) Create(input InsightInput, actingUserID uint) (*db.Insight, error) {
	insightType, status, err := normalizeInsightState(input)
	if err != nil {
		return nil, err
	}

	insight := db.Insight{
		Type:        insightType,
		Status:      status,
		Content:     input.Content,
		Excerpt:     strings.TrimSpace(input.Excerpt),
		PublishedAt: input.PublishedAt,
	}
	stampPublishedAt(&insight)

	err = createContent(s.db, &db.Insight{}, &insight.SluggedContent, input.ContentInput, actingUserID, func() error {
		return s.db.Create(&insight).Error
	})
	if err != nil {
		return nil, err
	}
	return &insight, nil
}

// Update applies changes to an existing insight.
func (s *InsightService) Update(id uint, input InsightInput, actingUserID uint) (*db.Insight, error) {
	insight, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	insightType, status, err := normalizeInsightState(input)
	if err != nil {
		return nil, err
	}

	insight.Type = insightType
	insight.Status = status
	insight.Content = input.Content
	insight.Excerpt = strings.TrimSpace(input.Excerpt)
	if input.PublishedAt != nil {
		insight.PublishedAt = input.PublishedAt
	}
	stampPublishedAt(insight)

	err = updateContent(s.db, &db.Insight{}, &insight.SluggedContent, input.ContentInput, id, actingUserID, func() error {
		return s.db.Save(insight).Error
	})
	if err != nil {
		return nil, err
	}
	return insight, nil
}

// Delete hard-deletes an insight.
func (s *InsightService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Insight{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsightNotFound
	}
	return nil
}

func normalizeInsightState(input InsightInput) (string, string, error) {
	insightType := strings.TrimSpace(input.Type)
	if insightType == "" {
		insightType = db.InsightTypeArticle
	}
	switch insightType {
	case db.InsightTypeArticle, db.InsightTypeNews, db.InsightTypeCaseNote:
	default:
		return "", "", ErrInsightTypeInvalid
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = db.InsightStatusDraft
	}
	switch status {
	case db.InsightStatusDraft, db.InsightStatusPublished:
	default:
		return "", "", ErrInsightStatusInvalid
	}

	return insightType, status, nil
}

func stampPublishedAt(insight *db.Insight) {
	if insight.Status == db.InsightStatusPublished && insight.PublishedAt == nil {
		now := time.Now()
		insight.PublishedAt = &now
	}
}

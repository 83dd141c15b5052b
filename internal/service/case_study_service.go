package service

import (
	"errors"
	"strings"

	"github.com/jiftek/website/internal/db"
	"gorm.io/gorm"
)

var ErrCaseStudyNotFound = errors.New("case study not found")

// CaseStudyService manages case studies.
type CaseStudyService struct {
	db *gorm.DB
}

// CaseStudyInput represents fields accepted when creating or updating a
// case study.
type CaseStudyInput struct {
	ContentInput
	ClientName string
	Industry   string
	Challenge  string
	Approach   string
	Results    string
}

// NewCaseStudyService creates a CaseStudyService instance.
func NewCaseStudyService(gdb *gorm.DB) *CaseStudyService {
	return &CaseStudyService{db: gdb}
}

// List returns all case studies for the admin list view.
func (s *CaseStudyService) List() ([]db.CaseStudy, error) {
	var studies []db.CaseStudy
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&studies).Error; err != nil {
		return nil, err
	}
	return studies, nil
}

// ListActive returns active case studies in display order.
func (s *CaseStudyService) ListActive() ([]db.CaseStudy, error) {
	var studies []db.CaseStudy
	if err := s.db.Where("is_active = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&studies).Error; err != nil {
		return nil, err
	}
	return studies, nil
}

// Get fetches a case study by id.
func (s *CaseStudyService) Get(id uint) (*db.CaseStudy, error) {
	var study db.CaseStudy
	if err := s.db.First(&study, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseStudyNotFound
		}
		return nil, err
	}
	return &study, nil
}

// GetBySlug fetches a case study by public slug.
func (s *CaseStudyService) GetBySlug(slug string) (*db.CaseStudy, error) {
	if slug == "" {
		return nil, ErrCaseStudyNotFound
	}
	var study db.CaseStudy
	if err := s.db.Where("slug = ?", slug).First(&study).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseStudyNotFound
		}
		return nil, err
	}
	return &study, nil
}

// Create persists a new case study on behalf of the acting user.
func (s *CaseStudyService) Create(input CaseStudyInput, actingUserID uint) (*db.CaseStudy, error) {
	study := db.CaseStudy{
		ClientName: strings.TrimSpace(input.ClientName),
		Industry:   strings.TrimSpace(input.Industry),
		Challenge:  input.Challenge,
		Approach:   input.Approach,
		Results:    input.Results,
	}

	err := createContent(s.db, &db.CaseStudy{}, &study.SluggedContent, input.ContentInput, actingUserID, func() error {
		return s.db.Create(&study).Error
	})
	if err != nil {
		return nil, err
	}
	return &study, nil
}

// Update applies changes to an existing case study.
func (s *CaseStudyService) Update(id uint, input CaseStudyInput, actingUserID uint) (*db.CaseStudy, error) {
	study, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	study.ClientName = strings.TrimSpace(input.ClientName)
	study.Industry = strings.TrimSpace(input.Industry)
	study.Challenge = input.Challenge
	study.Approach = input.Approach
	study.Results = input.Results

	err = updateContent(s.db, &db.CaseStudy{}, &study.SluggedContent, input.ContentInput, id, actingUserID, func() error {
		return s.db.Save(study).Error
	})
	if err != nil {
		return nil, err
	}
	return study, nil
}

// Delete hard-deletes a case study.
func (s *CaseStudyService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.CaseStudy{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaseStudyNotFound
	}
	return nil
}

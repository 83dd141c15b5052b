package service

import (
	"errors"

	"github.com/jiftek/website/internal/db"
	"gorm.io/gorm"
)

var (
	ErrSolutionNotFound = errors.New("solution not found")
	ErrSolutionInUse    = errors.New("solution still has services attached")
)

// SolutionService manages solutions and their grouped services.
type SolutionService struct {
	db *gorm.DB
}

// SolutionInput represents fields accepted when creating or updating a solution.
type SolutionInput struct {
	ContentInput
	Summary string
}

// NewSolutionService creates a SolutionService instance.
func NewSolutionService(gdb *gorm.DB) *SolutionService {
	return &SolutionService{db: gdb}
}

// List returns all solutions for the admin list view.
func (s *SolutionService) List() ([]db.Solution, error) {
	var solutions []db.Solution
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&solutions).Error; err != nil {
		return nil, err
	}
	return solutions, nil
}

// ListActive returns active solutions with their active services preloaded.
func (s *SolutionService) ListActive() ([]db.Solution, error) {
	var solutions []db.Solution
	if err := s.db.
		Preload("Services", func(gdb *gorm.DB) *gorm.DB {
			return gdb.Where("is_active = ?", true).Order("sort_order asc").Order("id asc")
		}).
		Where("is_active = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&solutions).Error; err != nil {
		return nil, err
	}
	return solutions, nil
}

// Get fetches a solution by id with its services preloaded.
func (s *SolutionService) Get(id uint) (*db.Solution, error) {
	var solution db.Solution
	if err := s.db.Preload("Services").First(&solution, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSolutionNotFound
		}
		return nil, err
	}
	return &solution, nil
}

// GetBySlug fetches a solution by its public slug.
func (s *SolutionService) GetBySlug(slug string) (*db.Solution, error) {
	if slug == "" {
		return nil, ErrSolutionNotFound
	}
	var solution db.Solution
	if err := s.db.
		Preload("Services", func(gdb *gorm.DB) *gorm.DB {
			return gdb.Where("is_active = ?", true).Order("sort_order asc").Order("id asc")
		}).
		Where("slug = ?", slug).
		First(&solution).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSolutionNotFound
		}
		return nil, err
	}
	return &solution, nil
}

// Create persists a new solution on behalf of the acting user.
func (s *SolutionService) Create(input SolutionInput, actingUserID uint) (*db.Solution, error) {
	solution := db.Solution{Summary: input.Summary}

	err := createContent(s.db, &db.Solution{}, &solution.SluggedContent, input.ContentInput, actingUserID, func() error {
		return s.db.Create(&solution).Error
	})
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

// Update applies changes to an existing solution.
func (s *SolutionService) Update(id uint, input SolutionInput, actingUserID uint) (*db.Solution, error) {
	var solution db.Solution
	if err := s.db.First(&solution, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSolutionNotFound
		}
		return nil, err
	}

	solution.Summary = input.Summary

	err := updateContent(s.db, &db.Solution{}, &solution.SluggedContent, input.ContentInput, id, actingUserID, func() error {
		return s.db.Save(&solution).Error
	})
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

// Delete hard-deletes a solution. A solution that still has services attached
// is refused; services must be moved or deleted first.
func (s *SolutionService) Delete(id uint) error {
	var solution db.Solution
	if err := s.db.First(&solution, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSolutionNotFound
		}
		return err
	}

	var attached int64
	if err := s.db.Model(&db.Service{}).
		Where("solution_id = ?", id).
		Count(&attached).Error; err != nil {
		return err
	}
	if attached > 0 {
		return ErrSolutionInUse
	}

	return s.db.Unscoped().Delete(&solution).Error
}

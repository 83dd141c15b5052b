package service

import (
	"encoding/json"
	"errors"

	"github.com/jiftek/website/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceService manages the service catalog entries.
type ServiceService struct {
	db *gorm.DB
}

// ServiceInput represents fields accepted when creating or updating a service.
type ServiceInput struct {
	ContentInput
	Icon       string
	Features   []string
	SolutionID *uint
}

// NewServiceService creates a ServiceService instance.
func NewServiceService(gdb *gorm.DB) *ServiceService {
	return &ServiceService{db: gdb}
}

// List returns all services for the admin list view.
func (s *ServiceService) List() ([]db.Service, error) {
	var services []db.Service
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// ListActive returns active services in display order for the public site.
func (s *ServiceService) ListActive() ([]db.Service, error) {
	var services []db.Service
	if err := s.db.Where("is_active = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Get fetches a service by id.
func (s *ServiceService) Get(id uint) (*db.Service, error) {
	var svc db.Service
	if err := s.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// GetBySlug fetches a service by its public slug.
func (s *ServiceService) GetBySlug(slug string) (*db.Service, error) {
	if slug == "" {
		return nil, ErrServiceNotFound
	}
	var svc db.Service
	if err := s.db.Where("slug = ?", slug).First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// Create persists a new service on behalf of the acting user.
func (s *ServiceService) Create(input ServiceInput, actingUserID uint) (*db.Service, error) {
	svc := db.Service{
		Icon:       input.Icon,
		SolutionID: input.SolutionID,
	}
	features, err := encodeFeatures(input.Features)
	if err != nil {
		return nil, err
	}
	svc.Features = features

	err = createContent(s.db, &db.Service{}, &svc.SluggedContent, input.ContentInput, actingUserID, func() error {
		return s.db.Create(&svc).Error
	})
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// Update applies changes to an existing service.
func (s *ServiceService) Update(id uint, input ServiceInput, actingUserID uint) (*db.Service, error) {
	svc, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	svc.Icon = input.Icon
	svc.SolutionID = input.SolutionID
	features, err := encodeFeatures(input.Features)
	if err != nil {
		return nil, err
	}
	svc.Features = features

	err = updateContent(s.db, &db.Service{}, &svc.SluggedContent, input.ContentInput, id, actingUserID, func() error {
		return s.db.Save(svc).Error
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// Delete hard-deletes a service.
func (s *ServiceService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// Features decodes the stored feature list of a service.
func (s *ServiceService) Features(svc *db.Service) []string {
	if len(svc.Features) == 0 {
		return nil
	}
	var features []string
	if err := json.Unmarshal(svc.Features, &features); err != nil {
		return nil
	}
	return features
}

func encodeFeatures(features []string) (datatypes.JSON, error) {
	if features == nil {
		return nil, nil
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

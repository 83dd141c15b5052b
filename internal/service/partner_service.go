package service

import (
	"errors"
	"strings"

	"github.com/jiftek/website/internal/db"
	"gorm.io/gorm"
)

var ErrPartnerNotFound = errors.New("partner not found")

// PartnerService manages partner logo entries.
type PartnerService struct {
	db *gorm.DB
}

// PartnerInput represents fields accepted when creating or updating a partner.
type PartnerInput struct {
	ContentInput
	WebsiteURL string
}

// NewPartnerService creates a PartnerService instance.
func NewPartnerService(gdb *gorm.DB) *PartnerService {
	return &PartnerService{db: gdb}
}

// List returns all partners for the admin list view.
func (s *PartnerService) List() ([]db.Partner, error) {
	var partners []db.Partner
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

// ListActive returns active partners in display order.
func (s *PartnerService) ListActive() ([]db.Partner, error) {
	var partners []db.Partner
	if err := s.db.Where("is_active = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

// Get fetches a partner by id.
func (s *PartnerService) Get(id uint) (*db.Partner, error) {
	var partner db.Partner
	if err := s.db.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

// Create persists a new partner on behalf of the acting user.
func (s *PartnerService) Create(input PartnerInput, actingUserID uint) (*db.Partner, error) {
	partner := db.Partner{WebsiteURL: strings.TrimSpace(input.WebsiteURL)}

	err := createContent(s.db, &db.Partner{}, &partner.SluggedContent, input.ContentInput, actingUserID, func() error {
		return s.db.Create(&partner).Error
	})
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// Update applies changes to an existing partner.
func (s *PartnerService) Update(id uint, input PartnerInput, actingUserID uint) (*db.Partner, error) {
	partner, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	partner.WebsiteURL = strings.TrimSpace(input.WebsiteURL)

	err = updateContent(s.db, &db.Partner{}, &partner.SluggedContent, input.ContentInput, id, actingUserID, func() error {
		return s.db.Save(partner).Error
	})
	if err != nil {
		return nil, err
	}
	return partner, nil
}

// Delete hard-deletes a partner.
func (s *PartnerService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Partner{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPartnerNotFound
	}
	return nil
}

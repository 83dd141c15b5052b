package service

import (
	"errors"
	"strings"

	"github.com/jiftek/website/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrQuoteRequired       = errors.New("testimonial quote is required")
	ErrRatingInvalid       = errors.New("rating must be between 0 and 5")
)

// TestimonialService manages customer testimonials.
type TestimonialService struct {
	db *gorm.DB
}

// TestimonialInput represents fields accepted when creating or updating a
// testimonial.
type TestimonialInput struct {
	ContentInput
	Quote       string
	AuthorName  string
	AuthorTitle string
	CompanyName string
	Rating      int
}

// NewTestimonialService creates a TestimonialService instance.
func NewTestimonialService(gdb *gorm.DB) *TestimonialService {
	return &TestimonialService{db: gdb}
}

// List returns all testimonials for the admin list view.
func (s *TestimonialService) List() ([]db.Testimonial, error) {
	var testimonials []db.Testimonial
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// ListActive returns active testimonials in display order.
func (s *TestimonialService) ListActive() ([]db.Testimonial, error) {
	var testimonials []db.Testimonial
	if err := s.db.Where("is_active = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// Get fetches a testimonial by id.
func (s *TestimonialService) Get(id uint) (*db.Testimonial, error) {
	var testimonial db.Testimonial
	if err := s.db.First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &testimonial, nil
}

// Create persists a new testimonial on behalf of the acting user.
func (s *TestimonialService) Create(input TestimonialInput, actingUserID uint) (*db.Testimonial, error) {
	if err := validateTestimonial(input); err != nil {
		return nil, err
	}

	testimonial := db.Testimonial{
		Quote:       strings.TrimSpace(input.Quote),
		AuthorName:  strings.TrimSpace(input.AuthorName),
		AuthorTitle: strings.TrimSpace(input.AuthorTitle),
		CompanyName: strings.TrimSpace(input.CompanyName),
		Rating:      input.Rating,
	}

	err := createContent(s.db, &db.Testimonial{}, &testimonial.SluggedContent, input.ContentInput, actingUserID, func() error {
		return s.db.Create(&testimonial).Error
	})
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Update applies changes to an existing testimonial.
func (s *TestimonialService) Update(id uint, input TestimonialInput, actingUserID uint) (*db.Testimonial, error) {
	if err := validateTestimonial(input); err != nil {
		return nil, err
	}

	testimonial, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	testimonial.Quote = strings.TrimSpace(input.Quote)
	testimonial.AuthorName = strings.TrimSpace(input.AuthorName)
	testimonial.AuthorTitle = strings.TrimSpace(input.AuthorTitle)
	testimonial.CompanyName = strings.TrimSpace(input.CompanyName)
	testimonial.Rating = input.Rating

	err = updateContent(s.db, &db.Testimonial{}, &testimonial.SluggedContent, input.ContentInput, id, actingUserID, func() error {
		return s.db.Save(testimonial).Error
	})
	if err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Delete hard-deletes a testimonial.
func (s *TestimonialService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

func validateTestimonial(input TestimonialInput) error {
	if strings.TrimSpace(input.Quote) == "" {
		return ErrQuoteRequired
	}
	if input.Rating < 0 || input.Rating > 5 {
		return ErrRatingInvalid
	}
	return nil
}

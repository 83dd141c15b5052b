package service

import (
	"errors"
	"strings"

	"github.com/jiftek/website/internal/db"
	"gorm.io/gorm"
)

var ErrTeamMemberNotFound = errors.New("team member not found")

// TeamService manages team member profiles.
type TeamService struct {
	db *gorm.DB
}

// TeamMemberInput represents fields accepted when creating or updating a
// team member.
type TeamMemberInput struct {
	ContentInput
	Position    string
	Bio         string
	Email       string
	LinkedInURL string
}

// NewTeamService creates a TeamService instance.
func NewTeamService(gdb *gorm.DB) *TeamService {
	return &TeamService{db: gdb}
}

// List returns all team members for the admin list view.
func (s *TeamService) List() ([]db.TeamMember, error) {
	var members []db.TeamMember
	if err := s.db.Order("sort_order asc").Order("id asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListActive returns active team members in display order.
func (s *TeamService) ListActive() ([]db.TeamMember, error) {
	var members []db.TeamMember
	if err := s.db.Where("is_active = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Get fetches a team member by id.
func (s *TeamService) Get(id uint) (*db.TeamMember, error) {
	var member db.TeamMember
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// GetBySlug fetches a team member by public slug.
func (s *TeamService) GetBySlug(slug string) (*db.TeamMember, error) {
	if slug == "" {
		return nil, ErrTeamMemberNotFound
	}
	var member db.TeamMember
	if err := s.db.Where("slug = ?", slug).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// Create persists a new team member on behalf of the acting user.
func (s *TeamService) Create(input TeamMemberInput, actingUserID uint) (*db.TeamMember, error) {
	member := db.TeamMember{
		Position:    strings.TrimSpace(input.Position),
		Bio:         input.Bio,
		Email:       strings.TrimSpace(input.Email),
		LinkedInURL: strings.TrimSpace(input.LinkedInURL),
	}

	err := createContent(s.db, &db.TeamMember{}, &member.SluggedContent, input.ContentInput, actingUserID, func() error {
		return s.db.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update applies changes to an existing team member.
func (s *TeamService) Update(id uint, input TeamMemberInput, actingUserID uint) (*db.TeamMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	member.Position = strings.TrimSpace(input.Position)
	member.Bio = input.Bio
	member.Email = strings.TrimSpace(input.Email)
	member.LinkedInURL = strings.TrimSpace(input.LinkedInURL)

	err = updateContent(s.db, &db.TeamMember{}, &member.SluggedContent, input.ContentInput, id, actingUserID, func() error {
		return s.db.Save(member).Error
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Delete hard-deletes a team member.
func (s *TeamService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.TeamMember{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}

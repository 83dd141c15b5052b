package handler

import (
	"github.com/jiftek/website/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	pages        *service.PageService
	roles        *service.RoleService
	services     *service.ServiceService
	solutions    *service.SolutionService
	insights     *service.InsightService
	team         *service.TeamService
	testimonials *service.TestimonialService
	caseStudies  *service.CaseStudyService
	partners     *service.PartnerService
	uploadDir    string
	uploadURL    string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:           gdb,
		pages:        service.NewPageService(gdb),
		roles:        service.NewRoleService(gdb),
		services:     service.NewServiceService(gdb),
		solutions:    service.NewSolutionService(gdb),
		insights:     service.NewInsightService(gdb),
		team:         service.NewTeamService(gdb),
		testimonials: service.NewTestimonialService(gdb),
		caseStudies:  service.NewCaseStudyService(gdb),
		partners:     service.NewPartnerService(gdb),
		uploadDir:    uploadDir,
		uploadURL:    uploadURL,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

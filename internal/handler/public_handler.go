package handler

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/db"
	"github.com/jiftek/website/internal/service"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts markdown to sanitized HTML for public responses.
func renderMarkdown(content string) string {
	if content == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}

// GetPublicPage returns a page's metadata and ordered sections for rendering.
func (a *API) GetPublicPage(c *gin.Context) {
	page, err := a.pages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": pageView(page)})
}

// GetPublicServices lists active services for the public site.
func (a *API) GetPublicServices(c *gin.Context) {
	services, err := a.services.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load services")
		return
	}

	views := make([]gin.H, 0, len(services))
	for i := range services {
		views = append(views, a.serviceView(&services[i]))
	}
	c.JSON(http.StatusOK, gin.H{"services": views})
}

// GetPublicService returns one service by slug.
func (a *API) GetPublicService(c *gin.Context) {
	svc, err := a.services.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, "service not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": a.serviceView(svc)})
}

// GetPublicSolutions lists active solutions with their services.
func (a *API) GetPublicSolutions(c *gin.Context) {
	solutions, err := a.solutions.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load solutions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"solutions": solutions})
}

// GetPublicSolution returns one solution by slug.
func (a *API) GetPublicSolution(c *gin.Context) {
	solution, err := a.solutions.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrSolutionNotFound) {
			respondError(c, http.StatusNotFound, "solution not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load solution")
		return
	}
	c.JSON(http.StatusOK, gin.H{"solution": solution})
}

// GetPublicInsights lists published insights, newest first.
func (a *API) GetPublicInsights(c *gin.Context) {
	insights, err := a.insights.ListPublished()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load insights")
		return
	}

	views := make([]gin.H, 0, len(insights))
	for i := range insights {
		views = append(views, insightListView(&insights[i]))
	}
	c.JSON(http.StatusOK, gin.H{"insights": views})
}

// GetPublicInsight returns one published insight by slug with its markdown
// body rendered to sanitized HTML.
func (a *API) GetPublicInsight(c *gin.Context) {
	insight, err := a.insights.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrInsightNotFound) {
			respondError(c, http.StatusNotFound, "insight not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load insight")
		return
	}

	view := insightListView(insight)
	view["html"] = renderMarkdown(insight.Content)
	view["seo_title"] = insight.SeoTitle
	view["seo_description"] = insight.SeoDescription
	view["seo_keywords"] = insight.SeoKeywords
	c.JSON(http.StatusOK, gin.H{"insight": view})
}

// GetPublicTeam lists active team members.
func (a *API) GetPublicTeam(c *gin.Context) {
	members, err := a.team.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load team")
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_members": members})
}

// GetPublicTeamMember returns one team member profile by slug.
func (a *API) GetPublicTeamMember(c *gin.Context) {
	member, err := a.team.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			respondError(c, http.StatusNotFound, "team member not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load team member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"team_member": gin.H{
		"name":         member.Title,
		"slug":         member.Slug,
		"position":     member.Position,
		"bio":          renderMarkdown(member.Bio),
		"email":        member.Email,
		"linkedin_url": member.LinkedInURL,
		"image_url":    member.ImageURL,
	}})
}

// GetPublicTestimonials lists active testimonials.
func (a *API) GetPublicTestimonials(c *gin.Context) {
	testimonials, err := a.testimonials.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// GetPublicCaseStudies lists active case studies.
func (a *API) GetPublicCaseStudies(c *gin.Context) {
	studies, err := a.caseStudies.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load case studies")
		return
	}
	c.JSON(http.StatusOK, gin.H{"case_studies": studies})
}

// GetPublicCaseStudy returns one case study by slug with its narrative fields
// rendered to sanitized HTML.
func (a *API) GetPublicCaseStudy(c *gin.Context) {
	study, err := a.caseStudies.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCaseStudyNotFound) {
			respondError(c, http.StatusNotFound, "case study not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load case study")
		return
	}

	c.JSON(http.StatusOK, gin.H{"case_study": gin.H{
		"title":       study.Title,
		"slug":        study.Slug,
		"description": study.Description,
		"image_url":   study.ImageURL,
		"client_name": study.ClientName,
		"industry":    study.Industry,
		"challenge":   renderMarkdown(study.Challenge),
		"approach":    renderMarkdown(study.Approach),
		"results":     renderMarkdown(study.Results),
	}})
}

// GetPublicPartners lists active partner logos.
func (a *API) GetPublicPartners(c *gin.Context) {
	partners, err := a.partners.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load partners")
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (a *API) serviceView(svc *db.Service) gin.H {
	return gin.H{
		"title":       svc.Title,
		"slug":        svc.Slug,
		"description": svc.Description,
		"image_url":   svc.ImageURL,
		"icon":        svc.Icon,
		"features":    a.services.Features(svc),
		"solution_id": svc.SolutionID,
	}
}

func insightListView(insight *db.Insight) gin.H {
	var publishedAt string
	if insight.PublishedAt != nil {
		publishedAt = insight.PublishedAt.Format(time.RFC3339)
	}
	return gin.H{
		"title":        insight.Title,
		"slug":         insight.Slug,
		"type":         insight.Type,
		"excerpt":      insight.Excerpt,
		"image_url":    insight.ImageURL,
		"published_at": publishedAt,
	}
}

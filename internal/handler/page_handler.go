package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/db"
	"github.com/jiftek/website/internal/service"
)

type pageMetaPayload struct {
	MetaTitle       string          `json:"meta_title"`
	MetaDescription string          `json:"meta_description"`
	MetaKeywords    string          `json:"meta_keywords"`
	Content         json.RawMessage `json:"content"`
}

type sectionPayload struct {
	Content   json.RawMessage `json:"content"`
	SortOrder int             `json:"sort_order"`
}

type sectionOrderPayload struct {
	Keys []string `json:"keys"`
}

// GetPageAdmin returns a page with its sections for the admin editor,
// creating the page on first access.
func (a *API) GetPageAdmin(c *gin.Context) {
	slug := c.Param("slug")
	if _, err := a.pages.GetOrCreate(slug); err != nil {
		if errors.Is(err, service.ErrPageSlugMissing) {
			respondError(c, http.StatusBadRequest, "page slug is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load page")
		return
	}

	page, err := a.pages.GetBySlug(slug)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load page")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":         pageView(page),
		"section_keys": service.KnownSectionKeys(),
	})
}

// UpdatePageMeta saves the SEO fields of a page.
func (a *API) UpdatePageMeta(c *gin.Context) {
	var payload pageMetaPayload
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}

	page, err := a.pages.UpdateMeta(c.Param("slug"), service.PageMetaInput{
		MetaTitle:       payload.MetaTitle,
		MetaDescription: payload.MetaDescription,
		MetaKeywords:    payload.MetaKeywords,
		Content:         payload.Content,
	}, currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrPageSlugMissing) {
			respondError(c, http.StatusBadRequest, "page slug is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save page")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": pageView(page)})
}

// UpsertSection creates or replaces a named section of a page.
func (a *API) UpsertSection(c *gin.Context) {
	var payload sectionPayload
	if !bindJSON(c, &payload, "invalid section payload") {
		return
	}

	section, err := a.pages.UpsertSection(
		c.Param("slug"),
		c.Param("key"),
		payload.Content,
		payload.SortOrder,
		currentUserID(c),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSectionKey):
			respondError(c, http.StatusBadRequest, "unknown section key")
		case errors.Is(err, service.ErrInvalidSectionContent):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPageSlugMissing):
			respondError(c, http.StatusBadRequest, "page slug is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to save section")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": sectionView(section)})
}

// ReorderSections updates the display order of a page's sections.
func (a *API) ReorderSections(c *gin.Context) {
	var payload sectionOrderPayload
	if !bindJSON(c, &payload, "invalid order payload") {
		return
	}

	if err := a.pages.ReorderSections(c.Param("slug"), payload.Keys); err != nil {
		switch {
		case errors.Is(err, service.ErrSectionOrder):
			respondError(c, http.StatusBadRequest, "invalid section order")
		case errors.Is(err, service.ErrSectionNotFound):
			respondError(c, http.StatusNotFound, "section not found")
		case errors.Is(err, service.ErrPageNotFound):
			respondError(c, http.StatusNotFound, "page not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to reorder sections")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sections reordered"})
}

func pageView(page *db.Page) gin.H {
	sections := make([]gin.H, 0, len(page.Sections))
	for i := range page.Sections {
		sections = append(sections, sectionView(&page.Sections[i]))
	}
	return gin.H{
		"slug":             page.Slug,
		"meta_title":       page.MetaTitle,
		"meta_description": page.MetaDescription,
		"meta_keywords":    page.MetaKeywords,
		"content":          json.RawMessage(page.Content),
		"sections":         sections,
	}
}

func sectionView(section *db.ContentSection) gin.H {
	return gin.H{
		"section_key": section.SectionKey,
		"content":     json.RawMessage(section.Content),
		"sort_order":  section.SortOrder,
	}
}

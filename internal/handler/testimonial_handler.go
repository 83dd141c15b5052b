package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jiftek/website/internal/service"
)

type testimonialPayload struct {
	contentPayload
	Quote       string `json:"quote"`
	AuthorName  string `json:"author_name"`
	AuthorTitle string `json:"author_title"`
	CompanyName string `json:"company_name"`
	Rating      int    `json:"rating"`
}

func (p testimonialPayload) toInput() service.TestimonialInput {
	return service.TestimonialInput{
		ContentInput: p.contentPayload.toInput(),
		Quote:        p.Quote,
		AuthorName:   p.AuthorName,
		AuthorTitle:  p.AuthorTitle,
		CompanyName:  p.CompanyName,
		Rating:       p.Rating,
	}
}

// GetTestimonials lists all testimonials for the admin UI.
func (a *API) GetTestimonials(c *gin.Context) {
	testimonials, err := a.testimonials.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// CreateTestimonial creates a testimonial from the admin form.
func (a *API) CreateTestimonial(c *gin.Context) {
	var payload testimonialPayload
	if !bindJSON(c, &payload, "invalid testimonial payload") {
		return
	}

	testimonial, err := a.testimonials.Create(payload.toInput(), currentUserID(c))
	if err != nil {
		respondTestimonialError(c, err, "failed to create testimonial")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"testimonial": testimonial})
}

// UpdateTestimonial updates a testimonial from the admin form.
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload testimonialPayload
	if !bindJSON(c, &payload, "invalid testimonial payload") {
		return
	}

	testimonial, err := a.testimonials.Update(id, payload.toInput(), currentUserID(c))
	if err != nil {
		respondTestimonialError(c, err, "failed to update testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonial": testimonial})
}

// DeleteTestimonial removes a testimonial from the admin list view.
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.testimonials.Delete(id); err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			respondError(c, http.StatusNotFound, "testimonial not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted"})
}

func respondTestimonialError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrTestimonialNotFound):
		respondError(c, http.StatusNotFound, "testimonial not found")
	case errors.Is(err, service.ErrTitleRequired):
		respondError(c, http.StatusBadRequest, "title is required")
	case errors.Is(err, service.ErrQuoteRequired):
		respondError(c, http.StatusBadRequest, "quote is required")
	case errors.Is(err, service.ErrRatingInvalid):
		respondError(c, http.StatusBadRequest, "rating must be between 0 and 5")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}

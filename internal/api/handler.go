package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Enjoy-Consult/restopro-site-web/internal/airtable"
	"github.com/Enjoy-Consult/restopro-site-web/internal/contact"
	"github.com/Enjoy-Consult/restopro-site-web/internal/content"
	"github.com/Enjoy-Consult/restopro-site-web/internal/sitemap"
	"github.com/Enjoy-Consult/restopro-site-web/pkg/models"
)

type Handler struct {
	content *content.Service
	contact *contact.Service
	baseURL string
	now     func() time.Time
}

// NewHandler wires the services behind the HTTP routes. now feeds the
// sitemap's generation date and may be nil for the wall clock.
func NewHandler(contentSvc *content.Service, contactSvc *contact.Service, baseURL string, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{content: contentSvc, contact: contactSvc, baseURL: baseURL, now: now}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/sitemap.xml", h.Sitemap)

	api := r.Group("/api")
	{
		api.GET("/blog", h.ListArticles)
		api.GET("/blog/:slug", h.GetArticle)
		api.GET("/testimonials", h.ListTestimonials)
		api.POST("/contact", h.SubmitContact)
	}
}

// ListArticles: GET /api/blog
func (h *Handler) ListArticles(c *gin.Context) {
	articles, err := h.content.ListArticles(c.Request.Context(), content.ArticleFilter{})
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticle: GET /api/blog/:slug
func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.content.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// ListTestimonials: GET /api/testimonials?featured=true&limit=6
func (h *Handler) ListTestimonials(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		testimonials []models.Testimonial
		err          error
	)
	if c.Query("featured") == "true" {
		testimonials, err = h.content.ListFeaturedTestimonials(ctx, parseLimit(c.DefaultQuery("limit", "0")))
	} else {
		testimonials, err = h.content.ListTestimonials(ctx)
	}
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// SubmitContact: POST /api/contact
func (h *Handler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "données invalides: " + err.Error()})
		return
	}
	result, err := h.contact.Submit(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": result.ID})
}

// Sitemap: GET /sitemap.xml
func (h *Handler) Sitemap(c *gin.Context) {
	articles, err := h.content.ListArticles(c.Request.Context(), content.ArticleFilter{})
	if err != nil {
		h.renderError(c, err)
		return
	}
	body, err := sitemap.Generate(h.baseURL, sitemap.DefaultStaticRoutes(), articles, h.now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// renderError maps the integration error types to HTTP responses. The user
// guidance differs between a rejected write (their data reached Airtable
// and was refused) and an unreachable upstream (try again or call).
func (h *Handler) renderError(c *gin.Context, err error) {
	var apiErr *airtable.APIError
	switch {
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "article introuvable"})
	case errors.As(err, &apiErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "erreur API Airtable",
			"status":  apiErr.StatusCode,
			"details": apiErr.Body,
		})
	case errors.Is(err, airtable.ErrUnreachable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "service indisponible, réessayez ou contactez-nous par téléphone",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseLimit ensures a sane integer limit; zero disables truncation.
func parseLimit(s string) int {
	l, err := strconv.Atoi(s)
	if err != nil || l < 0 {
		return 0
	}
	return l
}

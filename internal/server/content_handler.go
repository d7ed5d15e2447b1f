package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/mockdata"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
)

// ContentHandler serves the same-origin content routes from the mock
// dataset. The data-access layer targets these routes in mock mode.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/blog/articles", h.ListArticles)
	api.GET("/blog/articles/:slug", h.GetArticle)
	api.GET("/blog/categories", h.ListCategories)
	api.GET("/changelog", h.ListChangelog)
	api.GET("/changelog/:version", h.GetChangelogEntry)
	api.GET("/landing", h.GetLanding)
}

func (h *ContentHandler) ListArticles(c *gin.Context) {
	var q models.ArticleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	respondOK(c, mockdata.Articles(q))
}

func (h *ContentHandler) GetArticle(c *gin.Context) {
	article, err := mockdata.ArticleBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Article not found")
		return
	}
	respondOK(c, article)
}

func (h *ContentHandler) ListCategories(c *gin.Context) {
	respondOK(c, mockdata.Categories())
}

func (h *ContentHandler) ListChangelog(c *gin.Context) {
	var f models.ChangelogFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	respondOK(c, mockdata.Changelog(f))
}

func (h *ContentHandler) GetChangelogEntry(c *gin.Context) {
	entry, err := mockdata.ChangelogByVersion(c.Param("version"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Changelog entry not found")
		return
	}
	respondOK(c, models.ChangelogDetail{Entry: entry})
}

func (h *ContentHandler) GetLanding(c *gin.Context) {
	respondOK(c, mockdata.Landing())
}

package server

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/datasource"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/tiers"
)

const unavailable = "Unable to load data, please retry"

// DataSource is the part of the data-access layer the page-loader routes use.
type DataSource interface {
	LoadPresaleOverview(ctx context.Context) datasource.PresaleOverview
	PresaleStatus(ctx context.Context) *models.PresaleStatus
	PresaleAnalytics(ctx context.Context) *models.PresaleAnalytics
	Projects(ctx context.Context) []models.Project
	Project(ctx context.Context, id string) *models.Project
	XRPLStats(ctx context.Context) *models.XRPLStats
	AccountInfo(ctx context.Context, address string) *models.AccountInfo
	AuthenticateWallet(ctx context.Context, req models.WalletAuthRequest) *models.WalletAuthResponse
	LandingContent(ctx context.Context) models.LandingContent
	BlogArticles(ctx context.Context, q models.ArticleQuery) models.BlogArticlesPage
	BlogArticle(ctx context.Context, slug string) *models.BlogArticle
	BlogCategories(ctx context.Context) []models.BlogCategory
	Changelog(ctx context.Context, f models.ChangelogFilter) models.ChangelogPage
	ChangelogEntry(ctx context.Context, version string) *models.ChangelogEntry
}

// PresaleHandler serves page-loader routes backed by the data-access layer.
type PresaleHandler struct {
	data DataSource
}

func NewPresaleHandler(data DataSource) *PresaleHandler {
	return &PresaleHandler{data: data}
}

func (h *PresaleHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/presale/overview", h.GetOverview)
	api.GET("/presale/status", h.GetStatus)
	api.GET("/presale/analytics", h.GetAnalytics)
	api.GET("/tiers", h.ListTiers)
	api.GET("/tiers/resolve", h.ResolveTier)
	api.GET("/projects", h.ListProjects)
	api.GET("/projects/:id", h.GetProject)
	api.GET("/xrpl/stats", h.GetXRPLStats)
	api.GET("/xrpl/account/:address", h.GetAccount)
	api.GET("/content/landing", h.GetLandingContent)
	api.GET("/content/blog/articles", h.ListBlogArticles)
	api.GET("/content/blog/articles/:slug", h.GetBlogArticle)
	api.GET("/content/blog/categories", h.ListBlogCategories)
	api.GET("/content/changelog", h.ListChangelog)
	api.GET("/content/changelog/:version", h.GetChangelogEntry)
	api.POST("/auth/wallet", h.AuthenticateWallet)
}

func (h *PresaleHandler) GetOverview(c *gin.Context) {
	respondOK(c, h.data.LoadPresaleOverview(c.Request.Context()))
}

func (h *PresaleHandler) GetStatus(c *gin.Context) {
	respondOrUnavailable(c, h.data.PresaleStatus(c.Request.Context()))
}

func (h *PresaleHandler) GetAnalytics(c *gin.Context) {
	respondOrUnavailable(c, h.data.PresaleAnalytics(c.Request.Context()))
}

func (h *PresaleHandler) ListTiers(c *gin.Context) {
	respondOK(c, tiers.All())
}

type tierResolution struct {
	Balance      float64     `json:"balance"`
	Tier         tiers.Tier  `json:"tier"`
	NextTier     *tiers.Tier `json:"next_tier,omitempty"`
	TokensToNext float64     `json:"tokens_to_next,omitempty"`
}

func (h *PresaleHandler) ResolveTier(c *gin.Context) {
	balance, err := strconv.ParseFloat(c.Query("balance"), 64)
	if err != nil || math.IsNaN(balance) || math.IsInf(balance, 0) {
		respondError(c, http.StatusBadRequest, "balance must be a number")
		return
	}

	tier := tiers.ByBalance(balance)
	res := tierResolution{Balance: balance, Tier: tier}
	if next, ok := tiers.Next(tier); ok {
		res.NextTier = &next
		res.TokensToNext = float64(next.MinTokens) - balance
	}
	respondOK(c, res)
}

func (h *PresaleHandler) ListProjects(c *gin.Context) {
	respondOK(c, h.data.Projects(c.Request.Context()))
}

func (h *PresaleHandler) GetProject(c *gin.Context) {
	respondOrUnavailable(c, h.data.Project(c.Request.Context(), c.Param("id")))
}

func (h *PresaleHandler) GetXRPLStats(c *gin.Context) {
	respondOrUnavailable(c, h.data.XRPLStats(c.Request.Context()))
}

func (h *PresaleHandler) GetAccount(c *gin.Context) {
	respondOrUnavailable(c, h.data.AccountInfo(c.Request.Context(), c.Param("address")))
}

func (h *PresaleHandler) GetLandingContent(c *gin.Context) {
	respondOK(c, h.data.LandingContent(c.Request.Context()))
}

func (h *PresaleHandler) ListBlogArticles(c *gin.Context) {
	var q models.ArticleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	respondOK(c, h.data.BlogArticles(c.Request.Context(), q))
}

func (h *PresaleHandler) GetBlogArticle(c *gin.Context) {
	article := h.data.BlogArticle(c.Request.Context(), c.Param("slug"))
	if article == nil {
		respondError(c, http.StatusNotFound, "Article not found")
		return
	}
	respondOK(c, article)
}

func (h *PresaleHandler) ListBlogCategories(c *gin.Context) {
	respondOK(c, h.data.BlogCategories(c.Request.Context()))
}

func (h *PresaleHandler) ListChangelog(c *gin.Context) {
	var f models.ChangelogFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	respondOK(c, h.data.Changelog(c.Request.Context(), f))
}

// GetChangelogEntry wraps the entry in the same detail shape the same-origin
// route uses.
func (h *PresaleHandler) GetChangelogEntry(c *gin.Context) {
	entry := h.data.ChangelogEntry(c.Request.Context(), c.Param("version"))
	if entry == nil {
		respondError(c, http.StatusNotFound, "Changelog entry not found")
		return
	}
	respondOK(c, models.ChangelogDetail{Entry: *entry})
}

func (h *PresaleHandler) AuthenticateWallet(c *gin.Context) {
	var req models.WalletAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.WalletAddress == "" || req.Signature == "" || req.Message == "" {
		respondError(c, http.StatusBadRequest, "wallet_address, signature and message are required")
		return
	}
	respondOrUnavailable(c, h.data.AuthenticateWallet(c.Request.Context(), req))
}

// respondOrUnavailable maps a nil live result to 503.
func respondOrUnavailable[T any](c *gin.Context, v *T) {
	if v == nil {
		respondError(c, http.StatusServiceUnavailable, unavailable)
		return
	}
	respondOK(c, v)
}

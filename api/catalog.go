package api

import (
	"net/http"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
	"github.com/Travel-Muslim/Frontend-sub000/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service *catalog.CatalogService
}

type reviewDraftRequest struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

func NewCatalogHandler(service *catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/packages", h.packages)
	router.GET("/packages/:id", h.packageDetail)
	router.GET("/destinations", h.destinations)
	router.GET("/destinations/:id", h.destinationDetail)
	router.GET("/destinations/:id/review-draft", h.reviewDraft)
	router.PUT("/destinations/:id/review-draft", h.saveReviewDraft)
	router.GET("/articles", h.articles)
	router.GET("/articles/:id", h.articleDetail)
	router.GET("/community/posts", h.communityPosts)
	router.GET("/wishlist", h.wishlist)
	router.POST("/wishlist/:id/toggle", h.toggleWishlist)
	router.GET("/recently-viewed", h.recentlyViewed)
	router.GET("/profile", h.profile)
}

func (h *CatalogHandler) packages(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Packages(c.Request.Context()))
}

func (h *CatalogHandler) packageDetail(c *gin.Context) {
	p := h.service.PackageDetail(c.Request.Context(), c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) destinations(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Destinations(c.Request.Context()))
}

func (h *CatalogHandler) destinationDetail(c *gin.Context) {
	d := h.service.DestinationDetail(c.Request.Context(), c.Param("id"))
	if d == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "destination not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *CatalogHandler) reviewDraft(c *gin.Context) {
	draft, err := h.service.ReviewDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if draft == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no draft saved"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *CatalogHandler) saveReviewDraft(c *gin.Context) {
	var req reviewDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := domain.ReviewDraft{
		DestinationID: c.Param("id"),
		Rating:        req.Rating,
		Body:          req.Body,
	}
	if err := h.service.SaveReviewDraft(c.Request.Context(), draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *CatalogHandler) articles(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Articles(c.Request.Context()))
}

func (h *CatalogHandler) articleDetail(c *gin.Context) {
	a := h.service.ArticleDetail(c.Request.Context(), c.Param("id"))
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *CatalogHandler) communityPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CommunityPosts(c.Request.Context()))
}

func (h *CatalogHandler) wishlist(c *gin.Context) {
	ids, err := h.service.Wishlist(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"package_ids": ids})
}

func (h *CatalogHandler) toggleWishlist(c *gin.Context) {
	added, err := h.service.ToggleWishlist(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_wishlist": added})
}

func (h *CatalogHandler) profile(c *gin.Context) {
	u := h.service.Profile(c.Request.Context())
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile available"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *CatalogHandler) recentlyViewed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destination_ids": h.service.RecentlyViewed(c.Request.Context())})
}

package handlers

import (
	"net/http"

	"needmeet/services/rating"
	"needmeet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RatingHandler exposes rating submission and provider reporting over HTTP.
type RatingHandler struct {
	Service rating.RatingService
	Logger  *zap.Logger
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(service rating.RatingService, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{Service: service, Logger: logger}
}

// SubmitRatingHandler handles POST /api/ratings. The review is recorded
// against the authenticated principal regardless of the body's userId.
func (h *RatingHandler) SubmitRatingHandler(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}

	var input rating.SubmitRatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "providerId, userId, and rating are required", err.Error())
		return
	}
	input.UserID = requester

	summary, err := h.Service.SubmitRating(c.Request.Context(), input)
	if err != nil {
		h.Logger.Warn("Submit rating failed", zap.String("providerID", input.ProviderID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Rating saved successfully!",
		"rating":       summary.Rating,
		"totalReviews": summary.TotalReviews,
	})
}

// AddProviderReviewHandler handles POST /api/providers/:id/reviews; it is the
// same upsert path keyed on the provider route parameter.
func (h *RatingHandler) AddProviderReviewHandler(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}

	var input rating.SubmitRatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "rating is required", err.Error())
		return
	}
	input.ProviderID = c.Param("id")
	input.UserID = requester

	summary, err := h.Service.SubmitRating(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rating":       summary.Rating,
		"totalReviews": summary.TotalReviews,
	})
}

// GetProviderReviewsHandler handles GET /api/providers/:id/reviews.
func (h *RatingHandler) GetProviderReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.GetProviderReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ReportProviderHandler handles POST /api/providers/:id/report.
func (h *RatingHandler) ReportProviderHandler(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}

	reportedBy, err := h.Service.ReportProvider(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		h.Logger.Warn("Report provider failed", zap.String("providerID", c.Param("id")), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider reported", "reportedBy": reportedBy})
}

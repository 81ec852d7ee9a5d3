package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsraghul/hearty-foods/apperrors"
	"github.com/itsraghul/hearty-foods/services"
)

// AdminController exposes the dashboard summary and image uploads.
type AdminController struct {
	summaryService *services.SummaryService
	uploadService  *services.UploadService
}

// NewAdminController creates an admin controller.
func NewAdminController(summaryService *services.SummaryService, uploadService *services.UploadService) *AdminController {
	return &AdminController{summaryService: summaryService, uploadService: uploadService}
}

// GetSummary computes the dashboard aggregation on demand.
func (ac *AdminController) GetSummary(c *gin.Context) {
	summary, err := ac.summaryService.Compute(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type uploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// CreateUpload hands out a presigned PUT URL for a dish image.
func (ac *AdminController) CreateUpload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(err.Error()))
		return
	}

	upload, err := ac.uploadService.PresignDishImage(c.Request.Context(), req.ContentType)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

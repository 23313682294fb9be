package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-deploy-dashboard/internal/dashboard"
	"ai-deploy-dashboard/internal/logging"
	"ai-deploy-dashboard/internal/models"
	"ai-deploy-dashboard/internal/preview"
)

type ClassificationHandler struct {
	page   *dashboard.ClassificationPage
	limits preview.Limits
}

func NewClassificationHandler(page *dashboard.ClassificationPage, limits preview.Limits) *ClassificationHandler {
	return &ClassificationHandler{page: page, limits: limits}
}

// @Summary Classification page state
// @Description Get the selected image, the loading flag, the last error and the predicted class
// @Tags classification
// @Produce json
// @Success 200 {object} dashboard.ClassificationState
// @Router /api/classification [get]
func (h *ClassificationHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.page.State())
}

// @Summary Select an image
// @Description Upload a JPEG or PNG image to classify. Any previous result or error is discarded.
// @Tags classification
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} dashboard.ClassificationState
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /api/classification/image [post]
func (h *ClassificationHandler) UploadImage(c *gin.Context) {
	logging.SetPage(c, models.ResultKindClassification)

	up, pv, err := readUpload(c, h.limits)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	h.page.SelectImage(up, pv)
	logging.Info(c).Str("file_name", up.FileName).Int("bytes", len(up.Data)).Msg("Classification image selected")
	c.JSON(http.StatusOK, h.page.State())
}

// @Summary Run classification
// @Description Send the selected image to the classification endpoint
// @Tags classification
// @Produce json
// @Success 200 {object} dashboard.ClassificationState
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/classification/run [post]
func (h *ClassificationHandler) Run(c *gin.Context) {
	logging.SetPage(c, models.ResultKindClassification)

	if err := h.page.Run(c.Request.Context()); err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, h.page.State())
}

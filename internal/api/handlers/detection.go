package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-deploy-dashboard/internal/dashboard"
	"ai-deploy-dashboard/internal/logging"
	"ai-deploy-dashboard/internal/models"
	"ai-deploy-dashboard/internal/overlay"
	"ai-deploy-dashboard/internal/preview"
	"ai-deploy-dashboard/internal/services/publisher/mjpeg"
)

type DetectionHandler struct {
	page   *dashboard.DetectionPage
	view   *dashboard.OverlayView
	frames *mjpeg.Publisher
	stream string
	limits preview.Limits
}

func NewDetectionHandler(page *dashboard.DetectionPage, view *dashboard.OverlayView, frames *mjpeg.Publisher, stream string, limits preview.Limits) *DetectionHandler {
	return &DetectionHandler{page: page, view: view, frames: frames, stream: stream, limits: limits}
}

type DisplaySizeRequest struct {
	Width  int `json:"width" binding:"required,gt=0" example:"640"`
	Height int `json:"height" binding:"required,gt=0" example:"480"`
}

type OverlayCommandsResponse struct {
	Geometry models.DisplayGeometry `json:"geometry"`
	Passes   int                    `json:"passes"`
	Commands []overlay.Command      `json:"commands"`
	Ops      []overlay.Op           `json:"ops"`
}

func (h *DetectionHandler) tag(c *gin.Context) {
	logging.SetPage(c, models.ResultKindDetection)
}

// @Summary Detection page state
// @Description Get the selected image, the loading flag, the last error and the visible detections
// @Tags detection
// @Produce json
// @Success 200 {object} dashboard.DetectionState
// @Router /api/detection [get]
func (h *DetectionHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.page.State())
}

// @Summary Select an image
// @Description Upload a JPEG or PNG image. Any previous result or error is discarded.
// @Tags detection
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param display_width formData int false "Displayed width in pixels"
// @Param display_height formData int false "Displayed height in pixels"
// @Success 200 {object} dashboard.DetectionState
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /api/detection/image [post]
func (h *DetectionHandler) UploadImage(c *gin.Context) {
	h.tag(c)

	w, ht, sized, err := formSize(c, "display_width", "display_height")
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	up, pv, err := readUpload(c, h.limits)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	if sized {
		if err := pv.Resize(w, ht); err != nil {
			respondError(c, http.StatusBadRequest, err)
			return
		}
	}

	h.page.SelectImage(up, pv)
	logging.Info(c).
		Str("file_name", up.FileName).
		Int("bytes", len(up.Data)).
		Interface("geometry", pv.Geometry()).
		Msg("Detection image selected")
	c.JSON(http.StatusOK, h.page.State())
}

// @Summary Report display size
// @Description Record the layout size of the displayed image. The overlay is redrawn at the new scale.
// @Tags detection
// @Accept json
// @Produce json
// @Param request body DisplaySizeRequest true "Display size"
// @Success 200 {object} dashboard.DetectionState
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/detection/display [put]
func (h *DetectionHandler) SetDisplaySize(c *gin.Context) {
	h.tag(c)

	var req DisplaySizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.page.SetDisplaySize(req.Width, req.Height); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, dashboard.ErrNoImage) {
			status = http.StatusConflict
		}
		respondError(c, status, err)
		return
	}
	c.JSON(http.StatusOK, h.page.State())
}

// @Summary Update detection settings
// @Description Set the confidence threshold and maximum number of detections shown. Zero disables a filter.
// @Tags detection
// @Accept json
// @Produce json
// @Param request body models.DetectionSettings true "Settings"
// @Success 200 {object} dashboard.DetectionState
// @Failure 400 {object} ErrorResponse
// @Router /api/detection/settings [put]
func (h *DetectionHandler) UpdateSettings(c *gin.Context) {
	h.tag(c)

	var s models.DetectionSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := h.page.UpdateSettings(s); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, h.page.State())
}

// @Summary Run detection
// @Description Send the selected image to the detection endpoint and redraw the overlay
// @Tags detection
// @Produce json
// @Success 200 {object} dashboard.DetectionState
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/detection/run [post]
func (h *DetectionHandler) Run(c *gin.Context) {
	h.tag(c)

	if err := h.page.Run(c.Request.Context()); err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, h.page.State())
}

// @Summary Overlay image
// @Description Get the transparent overlay at the display size as PNG
// @Tags detection
// @Produce png
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /api/detection/overlay.png [get]
func (h *DetectionHandler) OverlayPNG(c *gin.Context) {
	data, err := h.view.PNG()
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", data)
}

// @Summary Overlay draw commands
// @Description Get the boxes, labels and surface calls of the last redraw
// @Tags detection
// @Produce json
// @Success 200 {object} OverlayCommandsResponse
// @Router /api/detection/overlay/commands [get]
func (h *DetectionHandler) OverlayCommands(c *gin.Context) {
	commands := h.view.Commands()
	if commands == nil {
		commands = []overlay.Command{}
	}
	ops := h.view.Ops()
	if ops == nil {
		ops = []overlay.Op{}
	}
	c.JSON(http.StatusOK, OverlayCommandsResponse{
		Geometry: h.page.State().Geometry,
		Passes:   h.view.Passes(),
		Commands: commands,
		Ops:      ops,
	})
}

// @Summary Annotated image
// @Description Get the displayed image with the overlay composited on it
// @Tags detection
// @Produce jpeg
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /api/detection/annotated.jpg [get]
func (h *DetectionHandler) AnnotatedJPEG(c *gin.Context) {
	data, err := h.view.AnnotatedJPEG()
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/jpeg", data)
}

// @Summary Annotated MJPEG stream
// @Description Stream the annotated image; a new part is sent after every redraw
// @Tags detection
// @Produce multipart/x-mixed-replace
// @Success 200 {file} binary
// @Router /api/detection/stream [get]
func (h *DetectionHandler) Stream(c *gin.Context) {
	h.tag(c)
	logging.Info(c).Str("stream", h.stream).Msg("MJPEG viewer connected")
	h.frames.StreamMJPEGHTTP(c.Writer, c.Request, h.stream)
	logging.Info(c).Str("stream", h.stream).Msg("MJPEG viewer disconnected")
}

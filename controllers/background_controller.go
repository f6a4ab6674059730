package controllers

import (
	"github.com/dhu2022-dev/mental-health-checkin/response"
	"github.com/dhu2022-dev/mental-health-checkin/services"
	"github.com/dhu2022-dev/mental-health-checkin/utils"

	"github.com/gin-gonic/gin"
)

// 4MB, the original deploy target's body limit
const maxBackgroundSize = 4 << 20

var allowedBackgroundTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// BackgroundController manages the dashboard's custom background
type BackgroundController struct {
	service *services.BackgroundService
}

// NewBackgroundController creates a BackgroundController
func NewBackgroundController(service *services.BackgroundService) *BackgroundController {
	return &BackgroundController{service: service}
}

// Get returns the current background URL, null when unset.
// @Summary      Current custom background
// @Produce      json
// @Router       /background [get]
func (ctl *BackgroundController) Get(c *gin.Context) {
	url, err := ctl.service.CurrentURL(c.Request.Context())
	if err != nil {
		// The dashboard can always fall back to its bundled backgrounds
		response.Success(c, gin.H{"url": nil})
		return
	}
	if url == "" {
		response.Success(c, gin.H{"url": nil})
		return
	}
	response.Success(c, gin.H{"url": url})
}

// Upload replaces the custom background.
// @Summary      Upload a custom background image
// @Accept       mpfd
// @Produce      json
// @Router       /background [post]
func (ctl *BackgroundController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided")
		return
	}
	if file.Size > maxBackgroundSize {
		response.BadRequest(c, "File too large (max 4MB)")
		return
	}
	if !allowedBackgroundTypes[file.Header.Get("Content-Type")] {
		response.BadRequest(c, "Invalid file type. Use JPEG, PNG, WebP, or GIF.")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Unable to open uploaded file")
		return
	}
	defer src.Close()

	url, err := ctl.service.Upload(c.Request.Context(), src)
	if err != nil {
		utils.LogError("[background] upload failed: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": url})
}

// Delete removes the custom background.
// @Summary      Remove the custom background
// @Produce      json
// @Router       /background [delete]
func (ctl *BackgroundController) Delete(c *gin.Context) {
	if err := ctl.service.Remove(c.Request.Context()); err != nil {
		utils.LogError("[background] delete failed: %v", err)
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"ok": true})
}

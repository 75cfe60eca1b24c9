package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests for the singleton business profile and
// UI theme.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{
		profileService: ps,
	}
}

// registerProfileRoutes registers routes related to the business profile.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
		profile.GET("/theme", h.getTheme)
		profile.PUT("/theme", h.setTheme)
	}
}

func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get profile from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.profileService.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating profile", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update profile in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	logger.Info("Profile updated successfully", slog.String("name", updated.Name))
	c.JSON(http.StatusOK, dto.ToProfileResponse(updated))
}

func (h *profileHandler) getTheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	theme, err := h.profileService.GetTheme(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get theme from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve theme"})
		return
	}

	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: theme})
}

func (h *profileHandler) setTheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetTheme", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.profileService.SetTheme(c.Request.Context(), req.Theme); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting theme", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set theme in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set theme"})
		}
		return
	}

	logger.Info("Theme updated successfully", slog.String("theme", req.Theme))
	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: req.Theme})
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/diethub/backend/internal/service"
	"github.com/pageza/diethub/backend/internal/types"
)

type ProfileHandler struct {
	profileService service.IProfileService
}

func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/health-profiles")
	{
		profiles.POST("", h.CreateOrUpdateProfile)
		profiles.GET("", h.ListProfiles)
		profiles.GET("/user/:userId", h.GetProfileByUserID)
		profiles.DELETE("/:id", h.DeleteProfile)
	}
}

// CreateOrUpdateProfile upserts the profile for the request's userId.
func (h *ProfileHandler) CreateOrUpdateProfile(c *gin.Context) {
	var req types.HealthProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.CreateOrUpdateProfile(c.Request.Context(), &req)
	if err != nil {
		internalError(c, err, "failed to save health profile")
		return
	}
	c.JSON(http.StatusCreated, types.NewHealthProfileResponse(profile))
}

func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	userID := c.Param("userId")
	profile, err := h.profileService.GetProfileByUserID(c.Request.Context(), userID)
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "health profile not found for user: " + userID})
		return
	}
	if err != nil {
		internalError(c, err, "failed to get health profile")
		return
	}
	c.JSON(http.StatusOK, types.NewHealthProfileResponse(profile))
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		internalError(c, err, "failed to list health profiles")
		return
	}
	c.JSON(http.StatusOK, types.NewHealthProfileResponses(profiles))
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, ok := parseID(c, "id", "health profile")
	if !ok {
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), id); err != nil {
		internalError(c, err, "failed to delete health profile")
		return
	}
	c.Status(http.StatusNoContent)
}

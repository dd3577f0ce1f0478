package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/diethub/backend/internal/service"
)

// SetupAPI mounts the recipe and health profile endpoints under /api.
func SetupAPI(router *gin.Engine, recipeService service.IRecipeService, profileService service.IProfileService) {
	RegisterValidators()

	api := router.Group("/api")
	NewRecipeHandler(recipeService).RegisterRoutes(api)
	NewProfileHandler(profileService).RegisterRoutes(api)
}
